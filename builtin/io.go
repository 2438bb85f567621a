package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rylenko/clisp/eval"
	"github.com/rylenko/clisp/value"
)

// Stdout and Stdin are the builtin I/O builtins' targets. Tests swap
// them for buffers; the CLI leaves them at their defaults (os.Stdout
// / os.Stdin).
var (
	Stdout io.Writer = os.Stdout
	Stdin  io.Reader = os.Stdin
)

// builtinPrint prints each argument followed by a space, then a
// newline, and returns the empty S-expression. Grounded on
// value_symbol_print_eval.
func builtinPrint(args *value.Value, _ *value.Environment) *value.Value {
	var b strings.Builder
	for _, child := range args.Children {
		b.WriteString(child.String())
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	fmt.Fprint(Stdout, b.String())
	return value.NewSExpr()
}

// builtinInput prints a String prompt, reads up to length characters
// of one line from Stdin, trims the trailing newline, and returns it
// as a String. Grounded on value_symbol_input_eval.
func builtinInput(args *value.Value, _ *value.Environment) *value.Value {
	if err := validateCount("input", args, 2); err != nil {
		return err
	}
	if err := validateArgType("input", args, 0, value.KindString); err != nil {
		return err
	}
	if err := validateArgType("input", args, 1, value.KindNumber); err != nil {
		return err
	}

	length := args.Children[1].Number
	if length < 1 {
		return value.NewError("input: Length must be >= 1. Got %f.", length)
	}

	fmt.Fprint(Stdout, args.Children[0].Str)

	line, err := bufio.NewReader(Stdin).ReadString('\n')
	if err != nil && line == "" {
		return value.NewError("Failed to input.")
	}
	line = strings.TrimRight(line, "\n")
	if n := int(length); len(line) > n {
		line = line[:n]
	}
	return value.NewString(line)
}

// builtinError wraps a String argument into an Error Value. Grounded
// on value_symbol_error_eval.
func builtinError(args *value.Value, _ *value.Environment) *value.Value {
	if err := validateCount("error", args, 1); err != nil {
		return err
	}
	if err := validateArgType("error", args, 0, value.KindString); err != nil {
		return err
	}
	return value.NewError("%s", args.Children[0].Str)
}

// LoadSource parses and reads a source file into a single S-expression
// of top-level forms. It is nil until the driver package sets it at
// startup, the way database/sql registers drivers; while it is nil the
// load builtin returns an Error.
var LoadSource func(path string) (*value.Value, error)

// builtinLoad parses the file named by its String argument, evaluates
// each top-level expression in order under env, prints any Error
// results inline, and returns the empty S-expression on success or an
// Error describing a parse failure. Grounded on value_symbol_load_eval.
func builtinLoad(args *value.Value, env *value.Environment) *value.Value {
	if err := validateCount("load", args, 1); err != nil {
		return err
	}
	if err := validateArgType("load", args, 0, value.KindString); err != nil {
		return err
	}

	path := args.Children[0].Str
	if LoadSource == nil {
		return value.NewError("load: no source loader configured")
	}

	expressions, err := LoadSource(path)
	if err != nil {
		return value.NewError("Error loading %s: %s", path, err)
	}

	for len(expressions.Children) > 0 {
		result := eval.Eval(expressions.PopChild(0), env)
		if result.Kind == value.KindError {
			fmt.Fprint(Stdout, result.Println())
		}
	}
	return value.NewSExpr()
}
