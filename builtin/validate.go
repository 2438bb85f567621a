// Package builtin implements the primitive operators dispatched by the
// Evaluator: arithmetic, comparison, logic, list and string
// manipulation, control flow, definition, lambda construction, I/O,
// and file loading.
//
// Every builtin owns its args S-expression and returns either args
// transformed, a freshly allocated Value, or an Error Value — never a
// Go error. The validation helpers below are the Go translation of the
// original C implementation's VALIDATE_SYMBOL_ARGS(_COUNT/_ARG_TYPE)
// macros (original_source/src/value.c): on failure they format an
// Error Value carrying args's already-evaluated children for the
// message, exactly as the macros do before freeing args.
package builtin

import "github.com/rylenko/clisp/value"

// validateCount reports an Error unless args has exactly n children.
func validateCount(name string, args *value.Value, n int) *value.Value {
	if len(args.Children) != n {
		return value.NewError("%s: Too many arguments. Expected %d. Got %d.", name, n, len(args.Children))
	}
	return nil
}

// validateMinCount reports an Error unless args has at least n children.
func validateMinCount(name string, args *value.Value, n int) *value.Value {
	if len(args.Children) < n {
		return value.NewError("%s: Too few arguments. Expected greater or equal to %d. Got %d.", name, n, len(args.Children))
	}
	return nil
}

// validateArgType reports an Error unless args.Children[i] has kind k.
func validateArgType(name string, args *value.Value, i int, k value.Kind) *value.Value {
	if args.Children[i].Kind != k {
		return value.NewError("%s: Invalid %d argument type. Expected %s. Got %s.", name, i, k, args.Children[i].Kind)
	}
	return nil
}
