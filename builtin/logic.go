package builtin

import "github.com/rylenko/clisp/value"

// builtinNot implements `!`: 0 becomes 1, any other Number becomes 0.
func builtinNot(args *value.Value, _ *value.Environment) *value.Value {
	if err := validateCount("!", args, 1); err != nil {
		return err
	}
	if err := validateArgType("!", args, 0, value.KindNumber); err != nil {
		return err
	}
	return numberFromBool(args.Children[0].Number == 0)
}

// conditionChain implements && and ||: left-to-right short-circuit over
// ≥2 Numbers, returning the accumulator at the point evaluation stops,
// grounded on value_symbol_condition_chain_eval.
func conditionChain(name string, args *value.Value, _ *value.Environment) *value.Value {
	if err := validateMinCount(name, args, 2); err != nil {
		return err
	}

	and := name == "&&"
	var result float64
	for i, child := range args.Children {
		if err := validateArgType(name, args, i, value.KindNumber); err != nil {
			return err
		}

		if i == 0 {
			result = child.Number
		} else if and {
			result = boolToFloat(result != 0 && child.Number != 0)
		} else {
			result = boolToFloat(result != 0 || child.Number != 0)
		}

		if (result == 0 && and) || (result != 0 && !and) {
			break
		}
	}
	return value.NewNumber(result)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func builtinAnd(args *value.Value, env *value.Environment) *value.Value { return conditionChain("&&", args, env) }
func builtinOr(args *value.Value, env *value.Environment) *value.Value  { return conditionChain("||", args, env) }
