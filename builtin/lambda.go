package builtin

import "github.com/rylenko/clisp/value"

// builtinLambda implements `\`: constructs a user-defined Function from
// a Qexpr of formal Symbols and a Qexpr body, grounded on
// value_symbol_lambda_eval.
func builtinLambda(args *value.Value, _ *value.Environment) *value.Value {
	if err := validateCount("\\", args, 2); err != nil {
		return err
	}
	if err := validateArgType("\\", args, 0, value.KindQExpr); err != nil {
		return err
	}
	if err := validateArgType("\\", args, 1, value.KindQExpr); err != nil {
		return err
	}

	formals := args.Children[0]
	for i, formal := range formals.Children {
		if formal.Kind != value.KindSymbol {
			return value.NewError("\\: Invalid type for %d arg. Expected %s. Got %s.", i, value.KindSymbol, formal.Kind)
		}
	}

	formals = args.PopChild(0)
	body := args.PopChild(0)
	return value.NewLambda(formals, body)
}
