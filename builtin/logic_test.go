package builtin_test

import (
	"testing"

	"github.com/rylenko/clisp/value"
)

func TestNot(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewNumber(0))
	if got := call("!", args); got.Number != 1 {
		t.Errorf("got %v", got)
	}
}

func TestAndShortCircuits(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewNumber(0))
	args.AddChild(value.NewNumber(1))
	if got := call("&&", args); got.Number != 0 {
		t.Errorf("got %v", got)
	}
}

func TestOrShortCircuits(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewNumber(1))
	args.AddChild(value.NewNumber(0))
	if got := call("||", args); got.Number != 1 {
		t.Errorf("got %v", got)
	}
}

func TestConditionChainTooFewArgs(t *testing.T) {
	args := value.NewSExpr()
	args.AddChild(value.NewNumber(1))
	got := call("&&", args)
	if got.Kind != value.KindError {
		t.Fatalf("got %v", got)
	}
}
