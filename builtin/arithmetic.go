package builtin

import "github.com/rylenko/clisp/value"

// arithmetic implements +, -, *, / as a left fold over a double
// accumulator, grounded on value_symbol_arithmetic_eval in the original
// C source. A lone operand to `-` negates it.
func arithmetic(name string, args *value.Value, _ *value.Environment) *value.Value {
	if err := validateMinCount(name, args, 1); err != nil {
		return err
	}
	for i := range args.Children {
		if err := validateArgType(name, args, i, value.KindNumber); err != nil {
			return err
		}
	}

	acc := args.PopChild(0).Number
	if name == "-" && len(args.Children) == 0 {
		acc = -acc
	}

	for len(args.Children) > 0 {
		right := args.PopChild(0).Number
		switch name {
		case "+":
			acc += right
		case "-":
			acc -= right
		case "*":
			acc *= right
		case "/":
			if right == 0 {
				return value.NewError("Division by zero.")
			}
			acc /= right
		}
	}

	return value.NewNumber(acc)
}

func builtinAdd(args *value.Value, env *value.Environment) *value.Value      { return arithmetic("+", args, env) }
func builtinSubtract(args *value.Value, env *value.Environment) *value.Value { return arithmetic("-", args, env) }
func builtinMultiply(args *value.Value, env *value.Environment) *value.Value { return arithmetic("*", args, env) }
func builtinDivide(args *value.Value, env *value.Environment) *value.Value   { return arithmetic("/", args, env) }
