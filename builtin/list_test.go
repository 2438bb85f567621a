package builtin_test

import (
	"testing"

	"github.com/rylenko/clisp/value"
)

func qexprOf(nums ...float64) *value.Value {
	q := value.NewQExpr()
	for _, n := range nums {
		q.AddChild(value.NewNumber(n))
	}
	return q
}

func TestHeadOnQExpr(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(qexprOf(1, 2, 3))
	got := call("head", args)
	if got.Kind != value.KindQExpr || len(got.Children) != 1 || got.Children[0].Number != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestHeadOnEmptyQExprErrors(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewQExpr())
	got := call("head", args)
	if got.Kind != value.KindError || got.Err != "head: Argument is empty." {
		t.Fatalf("got %v", got)
	}
}

func TestHeadOnString(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewString("abc"))
	got := call("head", args)
	if got.Kind != value.KindString || got.Str != "a" {
		t.Fatalf("got %v", got)
	}
}

func TestTailOnQExpr(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(qexprOf(1, 2, 3))
	got := call("tail", args)
	if got.Kind != value.KindQExpr || len(got.Children) != 2 || got.Children[0].Number != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestTailOnString(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewString("abc"))
	got := call("tail", args)
	if got.Kind != value.KindString || got.Str != "bc" {
		t.Fatalf("got %v", got)
	}
}

func TestJoinQExprs(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(qexprOf(1, 2))
	args.AddChild(qexprOf(3, 4))
	got := call("join", args)
	if got.Kind != value.KindQExpr || len(got.Children) != 4 {
		t.Fatalf("got %v", got)
	}
}

func TestJoinStrings(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewString("ab"))
	args.AddChild(value.NewString("cd"))
	got := call("join", args)
	if got.Kind != value.KindString || got.Str != "abcd" {
		t.Fatalf("got %v", got)
	}
}

func TestListRetagsToQExpr(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewNumber(1))
	got := call("list", args)
	if got.Kind != value.KindQExpr {
		t.Fatalf("got %v", got)
	}
}

func TestEvalRetagsAndEvaluates(t *testing.T) {
	q := value.NewQExpr()
	q.AddChild(value.NewSymbol("+"))
	q.AddChild(value.NewNumber(1))
	q.AddChild(value.NewNumber(2))

	args := value.NewSExpr()
	args.AddChild(q)

	got := call("eval", args)
	if got.Kind != value.KindNumber || got.Number != 3 {
		t.Fatalf("got %v", got)
	}
}
