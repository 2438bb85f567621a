package builtin

import "github.com/rylenko/clisp/value"

// equality implements == and != via structural equality (value.Equal),
// grounded on value_symbol_cmp_eval.
func equality(name string, args *value.Value, _ *value.Environment) *value.Value {
	if err := validateCount(name, args, 2); err != nil {
		return err
	}
	eq := value.Equal(args.Children[0], args.Children[1])
	if name == "!=" {
		eq = !eq
	}
	return numberFromBool(eq)
}

// ordering implements >, >=, <, <= over two Numbers, grounded on
// value_symbol_ordering_eval.
func ordering(name string, args *value.Value, _ *value.Environment) *value.Value {
	if err := validateCount(name, args, 2); err != nil {
		return err
	}
	if err := validateArgType(name, args, 0, value.KindNumber); err != nil {
		return err
	}
	if err := validateArgType(name, args, 1, value.KindNumber); err != nil {
		return err
	}

	left, right := args.Children[0].Number, args.Children[1].Number
	var result bool
	switch name {
	case ">":
		result = left > right
	case ">=":
		result = left >= right
	case "<":
		result = left < right
	case "<=":
		result = left <= right
	}
	return numberFromBool(result)
}

func numberFromBool(b bool) *value.Value {
	if b {
		return value.NewNumber(1)
	}
	return value.NewNumber(0)
}

func builtinEq(args *value.Value, env *value.Environment) *value.Value { return equality("==", args, env) }
func builtinNe(args *value.Value, env *value.Environment) *value.Value { return equality("!=", args, env) }
func builtinGt(args *value.Value, env *value.Environment) *value.Value { return ordering(">", args, env) }
func builtinGe(args *value.Value, env *value.Environment) *value.Value { return ordering(">=", args, env) }
func builtinLt(args *value.Value, env *value.Environment) *value.Value { return ordering("<", args, env) }
func builtinLe(args *value.Value, env *value.Environment) *value.Value { return ordering("<=", args, env) }
