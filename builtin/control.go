package builtin

import (
	"github.com/rylenko/clisp/eval"
	"github.com/rylenko/clisp/value"
)

// builtinIf implements if: a Number condition followed by two Qexpr
// branches. The chosen branch is retagged to an S-expression and
// evaluated; the other is discarded untouched. Grounded on
// value_symbol_if_eval.
func builtinIf(args *value.Value, env *value.Environment) *value.Value {
	if err := validateCount("if", args, 3); err != nil {
		return err
	}
	if err := validateArgType("if", args, 0, value.KindNumber); err != nil {
		return err
	}
	if err := validateArgType("if", args, 1, value.KindQExpr); err != nil {
		return err
	}
	if err := validateArgType("if", args, 2, value.KindQExpr); err != nil {
		return err
	}

	if args.Children[0].Number != 0 {
		return eval.Eval(args.Children[1].Retag(value.KindSExpr), env)
	}
	return eval.Eval(args.Children[2].Retag(value.KindSExpr), env)
}

// builtinWhile implements while: two Qexpr operands, condition and
// body. Each iteration copies and evaluates the condition as an
// S-expression; while its Number result is nonzero, a fresh copy of
// the body is evaluated the same way. Returns the last body result, or
// the empty S-expression if the body never ran. Grounded on
// value_symbol_while_eval; per the original source's validation
// function names, both type checks are reported under the symbol
// "while" (the original's first check names "tail" by a copy-paste in
// the C macro call, not an intentional message).
func builtinWhile(args *value.Value, env *value.Environment) *value.Value {
	if err := validateCount("while", args, 2); err != nil {
		return err
	}
	if err := validateArgType("while", args, 0, value.KindQExpr); err != nil {
		return err
	}
	if err := validateArgType("while", args, 1, value.KindQExpr); err != nil {
		return err
	}

	condition := args.Children[0]
	body := args.Children[1]
	result := value.NewSExpr()

	for {
		condResult := eval.Eval(condition.Copy().Retag(value.KindSExpr), env)
		if condResult.Kind != value.KindNumber {
			return value.NewError("while: Condition isn't a number, but %s.", condResult.Kind)
		}
		if condResult.Number == 0 {
			break
		}
		result = eval.Eval(body.Copy().Retag(value.KindSExpr), env)
	}

	return result
}
