package eval_test

import (
	"testing"

	"github.com/rylenko/clisp/eval"
	"github.com/rylenko/clisp/value"
)

func TestEvalSymbolLooksUpBinding(t *testing.T) {
	env := value.NewEnvironment(nil)
	env.SetLocal("x", value.NewNumber(9))

	got := eval.Eval(value.NewSymbol("x"), env)
	if got.Kind != value.KindNumber || got.Number != 9 {
		t.Fatalf("got %v", got)
	}
}

func TestEvalAtomsAreSelfEvaluating(t *testing.T) {
	env := value.NewEnvironment(nil)
	atoms := []*value.Value{
		value.NewNumber(1),
		value.NewString("s"),
		value.NewQExpr(),
	}
	for _, a := range atoms {
		if got := eval.Eval(a, env); got != a {
			t.Errorf("%v should evaluate to itself, got %v", a, got)
		}
	}
}

func TestEvalEmptySExprIsItself(t *testing.T) {
	env := value.NewEnvironment(nil)
	empty := value.NewSExpr()
	got := eval.Eval(empty, env)
	if got.Kind != value.KindSExpr || len(got.Children) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestEvalSingleChildSExprUnwraps(t *testing.T) {
	env := value.NewEnvironment(nil)
	s := value.NewSExpr()
	s.AddChild(value.NewNumber(5))

	got := eval.Eval(s, env)
	if got.Kind != value.KindNumber || got.Number != 5 {
		t.Fatalf("got %v", got)
	}
}

func TestEvalShortCircuitsOnError(t *testing.T) {
	env := value.NewEnvironment(nil)
	s := value.NewSExpr()
	s.AddChild(value.NewSymbol("undefined"))
	s.AddChild(value.NewNumber(1))

	got := eval.Eval(s, env)
	if got.Kind != value.KindError {
		t.Fatalf("expected Error, got %v", got)
	}
}

func TestEvalCallsBuiltinWithRemainingChildren(t *testing.T) {
	env := value.NewEnvironment(nil)
	env.SetLocal("first", value.NewBuiltin("first", func(args *value.Value, _ *value.Environment) *value.Value {
		return args.Children[0]
	}))

	s := value.NewSExpr()
	s.AddChild(value.NewSymbol("first"))
	s.AddChild(value.NewNumber(7))
	s.AddChild(value.NewNumber(8))

	got := eval.Eval(s, env)
	if got.Kind != value.KindNumber || got.Number != 7 {
		t.Fatalf("got %v", got)
	}
}

func TestEvalHeadMustBeFunction(t *testing.T) {
	env := value.NewEnvironment(nil)
	s := value.NewSExpr()
	s.AddChild(value.NewNumber(1))
	s.AddChild(value.NewNumber(2))

	got := eval.Eval(s, env)
	if got.Kind != value.KindError {
		t.Fatalf("expected Error, got %v", got)
	}
}

func TestCallLambdaFullyApplied(t *testing.T) {
	formals := value.NewQExpr()
	formals.AddChild(value.NewSymbol("x"))
	body := value.NewQExpr()
	body.AddChild(value.NewSymbol("x"))
	lambda := value.NewLambda(formals, body)

	args := value.NewSExpr()
	args.AddChild(value.NewNumber(3))

	env := value.NewEnvironment(nil)
	got := eval.Call(lambda, args, env)
	if got.Kind != value.KindNumber || got.Number != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestCallLambdaPartialApplicationCurries(t *testing.T) {
	formals := value.NewQExpr()
	formals.AddChild(value.NewSymbol("a"))
	formals.AddChild(value.NewSymbol("b"))
	body := value.NewQExpr()
	body.AddChild(value.NewSymbol("a"))
	lambda := value.NewLambda(formals, body)

	args := value.NewSExpr()
	args.AddChild(value.NewNumber(1))

	env := value.NewEnvironment(nil)
	got := eval.Call(lambda, args, env)
	if !got.IsLambda() {
		t.Fatalf("expected a partially applied lambda, got %v", got)
	}
	if len(got.Formals.Children) != 1 || got.Formals.Children[0].Symbol != "b" {
		t.Fatalf("expected remaining formal {b}, got %v", got.Formals)
	}
}

func TestCallLambdaTooManyArgsErrors(t *testing.T) {
	formals := value.NewQExpr()
	formals.AddChild(value.NewSymbol("x"))
	body := value.NewQExpr()
	lambda := value.NewLambda(formals, body)

	args := value.NewSExpr()
	args.AddChild(value.NewNumber(1))
	args.AddChild(value.NewNumber(2))

	env := value.NewEnvironment(nil)
	got := eval.Call(lambda, args, env)
	if got.Kind != value.KindError {
		t.Fatalf("expected Error, got %v", got)
	}
}

func TestCallLambdaVariadicBindsRestAsQExpr(t *testing.T) {
	formals := value.NewQExpr()
	formals.AddChild(value.NewSymbol("a"))
	formals.AddChild(value.NewSymbol("&"))
	formals.AddChild(value.NewSymbol("rest"))
	body := value.NewQExpr()
	body.AddChild(value.NewSymbol("rest"))
	lambda := value.NewLambda(formals, body)

	args := value.NewSExpr()
	args.AddChild(value.NewNumber(1))
	args.AddChild(value.NewNumber(2))
	args.AddChild(value.NewNumber(3))
	args.AddChild(value.NewNumber(4))

	env := value.NewEnvironment(nil)
	got := eval.Call(lambda, args, env)
	if got.Kind != value.KindQExpr || len(got.Children) != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestCallLambdaVariadicEmptyRest(t *testing.T) {
	formals := value.NewQExpr()
	formals.AddChild(value.NewSymbol("a"))
	formals.AddChild(value.NewSymbol("&"))
	formals.AddChild(value.NewSymbol("rest"))
	body := value.NewQExpr()
	body.AddChild(value.NewSymbol("rest"))
	lambda := value.NewLambda(formals, body)

	args := value.NewSExpr()
	args.AddChild(value.NewNumber(1))

	env := value.NewEnvironment(nil)
	got := eval.Call(lambda, args, env)
	if got.Kind != value.KindQExpr || len(got.Children) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestCallBuiltinBypassesFormalBinding(t *testing.T) {
	env := value.NewEnvironment(nil)
	builtin := value.NewBuiltin("id", func(args *value.Value, _ *value.Environment) *value.Value {
		return args
	})
	args := value.NewSExpr()
	args.AddChild(value.NewNumber(42))

	got := eval.Call(builtin, args, env)
	if got != args {
		t.Fatalf("builtin should receive args unchanged, got %v", got)
	}
}
