package builtin

import (
	"github.com/rylenko/clisp/eval"
	"github.com/rylenko/clisp/value"
)

// builtinList retags its already-evaluated argument S-expression as a
// Q-expression and returns it unchanged otherwise.
func builtinList(args *value.Value, _ *value.Environment) *value.Value {
	return args.Retag(value.KindQExpr)
}

// builtinHead returns a single-element Qexpr holding only the original
// first element, or (for a String) a one-character String. Grounded on
// value_symbol_head_eval.
func builtinHead(args *value.Value, _ *value.Environment) *value.Value {
	if err := validateCount("head", args, 1); err != nil {
		return err
	}

	arg := args.Children[0]
	switch arg.Kind {
	case value.KindQExpr:
		if len(arg.Children) == 0 {
			return value.NewError("head: Argument is empty.")
		}
		result := value.NewQExpr()
		result.AddChild(arg.Children[0])
		return result
	case value.KindString:
		if len(arg.Str) == 0 {
			return value.NewError("head: Argument is empty.")
		}
		return value.NewString(arg.Str[:1])
	default:
		return value.NewError("head: Invalid arg type. Expected %s or %s. Got %s.", value.KindQExpr, value.KindString, arg.Kind)
	}
}

// builtinTail returns the same kind as its argument with the first
// element (Qexpr) or byte (String) removed. Grounded on
// value_symbol_tail_eval; advancing past a multi-byte character's
// first byte yields an ill-formed string, deliberately, since slicing
// is byte-oriented rather than rune-oriented.
func builtinTail(args *value.Value, _ *value.Environment) *value.Value {
	if err := validateCount("tail", args, 1); err != nil {
		return err
	}

	arg := args.Children[0]
	switch arg.Kind {
	case value.KindQExpr:
		if len(arg.Children) == 0 {
			return value.NewError("tail: Argument is empty.")
		}
		arg.PopChild(0)
		return arg
	case value.KindString:
		if len(arg.Str) == 0 {
			return value.NewError("tail: Argument is empty.")
		}
		arg.Str = arg.Str[1:]
		return arg
	default:
		return value.NewError("tail: Invalid arg type. Expected: %s or %s. Got: %s.", value.KindQExpr, value.KindString, arg.Kind)
	}
}

// builtinJoin concatenates ≥2 same-kind operands (all Qexpr or all
// String) into the first operand. Grounded on value_symbol_join_eval.
func builtinJoin(args *value.Value, _ *value.Environment) *value.Value {
	if err := validateMinCount("join", args, 2); err != nil {
		return err
	}

	if args.Children[0].Kind == value.KindQExpr {
		for i := range args.Children {
			if err := validateArgType("join", args, i, value.KindQExpr); err != nil {
				return err
			}
		}
		left := args.PopChild(0)
		for len(args.Children) > 0 {
			right := args.PopChild(0)
			left.Children = append(left.Children, right.Children...)
		}
		return left
	}

	for i := range args.Children {
		if err := validateArgType("join", args, i, value.KindString); err != nil {
			return err
		}
	}
	left := args.PopChild(0)
	for len(args.Children) > 0 {
		left.Str += args.PopChild(0).Str
	}
	return left
}

// builtinEval retags its sole Qexpr argument as an S-expression and
// evaluates it, grounded on value_symbol_eval_eval.
func builtinEval(args *value.Value, env *value.Environment) *value.Value {
	if err := validateCount("eval", args, 1); err != nil {
		return err
	}
	if err := validateArgType("eval", args, 0, value.KindQExpr); err != nil {
		return err
	}
	return eval.Eval(args.Children[0].Retag(value.KindSExpr), env)
}
