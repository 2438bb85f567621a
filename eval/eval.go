// Package eval implements the tree-walking evaluator and function
// invocation. It is grounded on the original
// value_eval/value_sexpression_eval/value_function_call algorithm in
// original_source/src/value.c, translated so that errors are Values,
// not Go errors — see package value's doc comment.
package eval

import "github.com/rylenko/clisp/value"

// Eval performs one reduction step based on the Kind of v: a Symbol is
// replaced by its binding, an S-expression is reduced by
// evalSExpr, and everything else (Number, String, Q-expression, Error,
// Function) is returned unchanged.
func Eval(v *value.Value, env *value.Environment) *value.Value {
	switch v.Kind {
	case value.KindSymbol:
		return env.Get(v.Symbol)
	case value.KindSExpr:
		return evalSExpr(v, env)
	default:
		return v
	}
}

// evalSExpr evaluates every child left to right, short-circuiting on
// the first Error (the surrounding expression is discarded); collapses
// to the empty S-expression or the sole surviving child when there are
// zero or one children; otherwise pops the head, requires it to be a
// Function, and invokes it with the rest as the argument list.
func evalSExpr(v *value.Value, env *value.Environment) *value.Value {
	for i, child := range v.Children {
		result := Eval(child, env)
		v.Children[i] = result
		if result.Kind == value.KindError {
			return result
		}
	}

	switch len(v.Children) {
	case 0:
		return v
	case 1:
		return v.Children[0]
	}

	head := v.PopChild(0)
	if !head.IsFunction() {
		return value.NewError("()'s first child is not a function, but %s.", head.Kind)
	}
	return Call(head, v, env)
}

// Call invokes a Function Value f with an already-evaluated S-expression
// of arguments.
func Call(f *value.Value, args *value.Value, env *value.Environment) *value.Value {
	if f.IsBuiltin() {
		return f.Fn(args, env)
	}
	return callLambda(f, args, env)
}

// callLambda binds args into f's private environment one formal at a
// time, honours the `&`-rest convention, and either evaluates the body
// (all formals bound) or returns the partially-applied lambda — this
// repo's form of currying.
func callLambda(f *value.Value, args *value.Value, env *value.Environment) *value.Value {
	formalsExpected := len(f.Formals.Children)
	argsGiven := len(args.Children)

	for len(args.Children) > 0 {
		if len(f.Formals.Children) == 0 {
			return value.NewError("Too many args. Expected %d. Got %d.", formalsExpected, argsGiven)
		}

		formal := f.Formals.PopChild(0)
		if formal.Symbol == "&" {
			if len(f.Formals.Children) != 1 {
				return value.NewError("`&` not followed by single formal")
			}
			rest := f.Formals.PopChild(0)
			f.CapturedEnv.SetLocal(rest.Symbol, args.Retag(value.KindQExpr))
			args = value.NewSExpr()
			break
		}

		arg := args.PopChild(0)
		f.CapturedEnv.SetLocal(formal.Symbol, arg)
	}

	if len(f.Formals.Children) > 0 && f.Formals.Children[0].Symbol == "&" {
		if len(f.Formals.Children) != 2 {
			return value.NewError("`&` not followed by single formal")
		}
		f.Formals.PopChild(0)
		rest := f.Formals.PopChild(0)
		f.CapturedEnv.SetLocal(rest.Symbol, value.NewQExpr())
	}

	if len(f.Formals.Children) == 0 {
		f.CapturedEnv.SetParent(env)
		body := f.Body.Copy()
		body.Retag(value.KindSExpr)
		return Eval(body, f.CapturedEnv)
	}

	return f
}
