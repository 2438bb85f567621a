// Package repl implements the read-eval-print loop, using
// github.com/chzyer/readline as the line editor.
package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/rylenko/clisp/eval"
	"github.com/rylenko/clisp/parser"
	"github.com/rylenko/clisp/reader"
	"github.com/rylenko/clisp/value"
)

const prompt = ">>> "

// EvalLine parses line as a single root expression: on parse failure
// it writes the parser's diagnostic to out and returns; on success it
// evaluates the whole line as one S-expression under env and prints
// the result, matching interpret()'s single value_eval(value_read(...))
// call in the original implementation. A bare `+ 1 2 3` therefore
// combines into one call rather than being evaluated child by child.
func EvalLine(line string, env *value.Environment, out io.Writer) {
	root, err := parser.Parse(line)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}

	result := eval.Eval(reader.Read(root), env)
	fmt.Fprint(out, result.Println())
}

// Run drives the loop: one line in from the line editor, one EvalLine
// out, until EOF (Ctrl-D) or the editor itself errors. History is kept
// by the readline instance for the life of the process.
func Run(env *value.Environment, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		EvalLine(line, env, out)
	}
}
