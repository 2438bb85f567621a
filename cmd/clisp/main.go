// Command clisp is the CLI entrypoint: with no arguments it loads the
// embedded standard-library prelude and starts the REPL; --no-std
// skips the prelude in that mode. With file arguments it loads each
// in order and exits, builtins only — the original implementation
// never loads the prelude in file mode, so --no-std has no effect
// there.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rylenko/clisp/driver"
	"github.com/rylenko/clisp/repl"
)

func newRootCmd() *cobra.Command {
	var noStd bool

	cmd := &cobra.Command{
		Use:   "clisp [files...]",
		Short: "A small homoiconic Lisp-family interpreter",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				env, err := driver.NewGlobalEnv(noStd)
				if err != nil {
					return err
				}
				return repl.Run(env, os.Stdout)
			}

			env := driver.NewEnv()
			for _, path := range args {
				if err := driver.LoadFile(path, env); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noStd, "no-std", false, "start the REPL with an empty global scope (builtins only)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
