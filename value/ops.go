package value

import (
	"fmt"
	"strings"
)

// Copy produces an independent deep copy of v. For expressions it
// recurses over children; for lambdas it recurses into formals, body,
// and the captured environment; for builtins it duplicates the handle.
// Every Environment lookup and local bind goes through Copy so that a
// value once bound never aliases the one a caller still holds (the
// copy independence between a bound value and its original).
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	cp := &Value{Kind: v.Kind}
	switch v.Kind {
	case KindNumber:
		cp.Number = v.Number
	case KindString:
		cp.Str = v.Str
	case KindSymbol:
		cp.Symbol = v.Symbol
	case KindError:
		cp.Err = v.Err
	case KindSExpr, KindQExpr:
		cp.Children = make([]*Value, len(v.Children))
		for i, child := range v.Children {
			cp.Children[i] = child.Copy()
		}
	case KindFunction:
		if v.Fn != nil {
			cp.Fn = v.Fn
			cp.LambdaName = v.LambdaName
		} else {
			cp.LambdaName = v.LambdaName
			cp.Formals = v.Formals.Copy()
			cp.Body = v.Body.Copy()
			cp.CapturedEnv = v.CapturedEnv.Copy()
		}
	}
	return cp
}

// Equal reports structural equality: same variant; Go's == for
// Numbers (so NaN compares unequal to itself and 0 equals -0);
// byte-for-byte for Strings/Symbols; same length and pairwise equal
// children for expressions; same handle for a builtin pair; equal
// formals and equal body (captured environment ignored) for a lambda
// pair. A builtin and a lambda are never equal, even though both have
// Kind == KindFunction.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNumber:
		return a.Number == b.Number
	case KindString:
		return a.Str == b.Str
	case KindSymbol:
		return a.Symbol == b.Symbol
	case KindError:
		return a.Err == b.Err
	case KindSExpr, KindQExpr:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Equal(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	case KindFunction:
		if a.Fn != nil || b.Fn != nil {
			return reflectEqualBuiltin(a, b)
		}
		return Equal(a.Formals, b.Formals) && Equal(a.Body, b.Body)
	default:
		return false
	}
}

// reflectEqualBuiltin compares two builtin handles. Go does not permit
// comparing func values with ==, so the comparison goes through the
// registered name (see package builtin's registry) rather than the
// function pointer itself.
func reflectEqualBuiltin(a, b *Value) bool {
	if a.Fn == nil || b.Fn == nil {
		return false
	}
	return a.LambdaName != "" && a.LambdaName == b.LambdaName
}

// String renders v using its canonical printed form:
// Numbers in %f; Strings double-quoted with backslash escapes; Symbols
// verbatim; Errors as "Error: <message>"; S-expressions parenthesised
// and Q-expressions brace-wrapped with space-separated children;
// builtins as "<builtin>"; lambdas as "(\ <formals> <body>)".
func (v *Value) String() string {
	if v == nil {
		return "()"
	}
	switch v.Kind {
	case KindNumber:
		return fmt.Sprintf("%f", v.Number)
	case KindString:
		return quoteString(v.Str)
	case KindSymbol:
		return v.Symbol
	case KindError:
		return "Error: " + v.Err
	case KindSExpr:
		return wrapChildren(v.Children, "(", ")")
	case KindQExpr:
		return wrapChildren(v.Children, "{", "}")
	case KindFunction:
		if v.Fn != nil {
			return "<builtin>"
		}
		return "(\\ " + v.Formals.String() + " " + v.Body.String() + ")"
	default:
		return ""
	}
}

func wrapChildren(children []*Value, open, close string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, child := range children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(child.String())
	}
	sb.WriteString(close)
	return sb.String()
}

// quoteString renders a String Value's printed form: double-quoted with
// backslash escapes for the characters the reader's unescaper
// recognises: " \ \n \t \r.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Println returns v's printed form followed by a newline, matching the
// REPL's println — used by the REPL and for Error results printed
// inline by load and the driver.
func (v *Value) Println() string { return v.String() + "\n" }
