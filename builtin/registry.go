package builtin

import (
	"fmt"

	"t73f.de/r/zero/set"

	"github.com/rylenko/clisp/value"
)

// table lists every builtin and the symbol it's installed under.
var table = []struct {
	name string
	fn   value.Builtin
}{
	{"+", builtinAdd},
	{"-", builtinSubtract},
	{"*", builtinMultiply},
	{"/", builtinDivide},
	{"==", builtinEq},
	{"!=", builtinNe},
	{">", builtinGt},
	{">=", builtinGe},
	{"<", builtinLt},
	{"<=", builtinLe},
	{"!", builtinNot},
	{"&&", builtinAnd},
	{"||", builtinOr},
	{"\\", builtinLambda},
	{"def", builtinDef},
	{"=", builtinSet},
	{"if", builtinIf},
	{"while", builtinWhile},
	{"list", builtinList},
	{"head", builtinHead},
	{"tail", builtinTail},
	{"join", builtinJoin},
	{"eval", builtinEval},
	{"print", builtinPrint},
	{"input", builtinInput},
	{"error", builtinError},
	{"load", builtinLoad},
}

// Install binds every builtin in env (normally the top-level scope).
// It panics if table ever grows a duplicate name, a programmer error
// checked each time Install runs.
func Install(env *value.Environment) {
	names := make([]string, len(table))
	for i, entry := range table {
		names[i] = entry.name
	}
	if unique := set.New(names...).Length(); unique != len(names) {
		panic(fmt.Sprintf("builtin: table has %d entries but only %d unique names", len(names), unique))
	}

	for _, entry := range table {
		env.SetLocal(entry.name, value.NewBuiltin(entry.name, entry.fn))
	}
}
