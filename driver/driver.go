// Package driver wires the Parser, Reader, and Evaluator together for
// the two CLI modes: building the initial global Environment (with or
// without the standard-library prelude) and loading source files in
// batch.
//
// It also supplies the load builtin's Parser+Reader collaboration by
// setting builtin.LoadSource at init time, the way database/sql
// registers drivers; the builtin package itself does not import parser
// or reader.
package driver

import (
	"fmt"
	"os"

	"github.com/rylenko/clisp/builtin"
	"github.com/rylenko/clisp/eval"
	"github.com/rylenko/clisp/parser"
	"github.com/rylenko/clisp/reader"
	"github.com/rylenko/clisp/stdlib"
	"github.com/rylenko/clisp/value"
)

func init() {
	builtin.LoadSource = loadSource
}

// loadSource reads, parses, and converts the file at path into a
// single S-expression of top-level forms, for the load builtin.
func loadSource(path string) (*value.Value, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	root, err := parser.Parse(string(contents))
	if err != nil {
		return nil, err
	}
	return reader.Read(root), nil
}

// NewEnv returns a top-level Environment with every builtin installed
// and nothing else bound.
func NewEnv() *value.Environment {
	env := value.NewEnvironment(nil)
	builtin.Install(env)
	return env
}

// LoadStdlib evaluates the embedded standard-library prelude under env.
func LoadStdlib(env *value.Environment) error {
	return EvalSource(stdlib.Source, env)
}

// NewGlobalEnv returns a top-level Environment with every builtin
// installed. Unless noStd, it also evaluates the embedded
// standard-library prelude in that scope. This is the REPL's startup
// path; file-mode builds its environment directly from NewEnv so that
// loading the prelude stays specific to interactive use.
func NewGlobalEnv(noStd bool) (*value.Environment, error) {
	env := NewEnv()
	if noStd {
		return env, nil
	}
	if err := LoadStdlib(env); err != nil {
		return nil, err
	}
	return env, nil
}

// EvalSource parses source as a Program and evaluates every top-level
// expression under env in order, printing any Error results to
// builtin.Stdout — the same "print inline, keep going" behavior the
// load builtin uses for batch files.
func EvalSource(source string, env *value.Environment) error {
	root, err := parser.Parse(source)
	if err != nil {
		return err
	}
	expressions := reader.Read(root)
	for len(expressions.Children) > 0 {
		result := eval.Eval(expressions.PopChild(0), env)
		if result.Kind == value.KindError {
			fmt.Fprint(builtin.Stdout, result.Println())
		}
	}
	return nil
}

// LoadFile reads path's text and evaluates it under env, implementing
// the CLI's batch-file mode: each path argument is loaded in turn
// before the process exits.
func LoadFile(path string, env *value.Environment) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return EvalSource(string(contents), env)
}
