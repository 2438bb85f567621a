// Package reader translates a parser ast.Node tree into a value.Value
// tree, grounded on value_read in original_source/src/value.c.
package reader

import (
	"strconv"
	"strings"

	"github.com/rylenko/clisp/ast"
	"github.com/rylenko/clisp/value"
)

// Read converts n into a Value. Root and Sexpression nodes become an
// S-expression; Qexpression nodes become a Q-expression; both recurse
// into their children, skipping Punct and Comment nodes. Number,
// Symbol, and String leaves become the matching Value kind.
func Read(n ast.Node) *value.Value {
	switch n.Tag() {
	case ast.Number:
		return readNumber(n.Contents())
	case ast.Symbol:
		return value.NewSymbol(n.Contents())
	case ast.String:
		return readString(n.Contents())
	}

	var expr *value.Value
	switch n.Tag() {
	case ast.Qexpression:
		expr = value.NewQExpr()
	default: // Root, Sexpression
		expr = value.NewSExpr()
	}

	for _, child := range n.Children() {
		if child.Tag() == ast.Punct || child.Tag() == ast.Comment {
			continue
		}
		expr.AddChild(Read(child))
	}
	return expr
}

// readNumber parses a decimal-with-optional-fraction literal; a range
// error (value outside float64's range) becomes an Error Value rather
// than a Go error.
func readNumber(contents string) *value.Value {
	n, err := strconv.ParseFloat(contents, 64)
	if err != nil {
		return value.NewError("Invalid number: %s.", contents)
	}
	return value.NewNumber(n)
}

// readString strips the surrounding quotes and unescapes \n \t \r \" \\.
func readString(contents string) *value.Value {
	inner := contents
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	}
	return value.NewString(unescape(inner))
}

func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
