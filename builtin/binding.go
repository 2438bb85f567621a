package builtin

import "github.com/rylenko/clisp/value"

// variable implements def and = (symbol, value in args[0]/args[1:]):
// args[0] must be a Qexpr of Symbols whose length matches the number
// of remaining values; each symbol is bound to its corresponding value
// either globally (def) or in the calling scope (=). Grounded on
// value_symbol_variable_eval.
func variable(name string, args *value.Value, env *value.Environment) *value.Value {
	if err := validateMinCount(name, args, 2); err != nil {
		return err
	}

	symbols := args.Children[0]
	if symbols.Kind != value.KindQExpr {
		return value.NewError("%s: Arguments not in {}.", name)
	}
	for _, s := range symbols.Children {
		if s.Kind != value.KindSymbol {
			return value.NewError("%s: Argument not a symbol.", name)
		}
	}
	if len(symbols.Children) != len(args.Children)-1 {
		return value.NewError("%s: Arguments count not equals to values count.", name)
	}

	for i, s := range symbols.Children {
		val := args.Children[i+1]
		if name == "=" {
			env.SetLocal(s.Symbol, val)
		} else {
			env.SetGlobal(s.Symbol, val)
		}
	}
	return value.NewSExpr()
}

func builtinDef(args *value.Value, env *value.Environment) *value.Value { return variable("def", args, env) }
func builtinSet(args *value.Value, env *value.Environment) *value.Value { return variable("=", args, env) }
