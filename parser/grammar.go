package parser

import (
	"strconv"

	"github.com/rylenko/clisp/ast"
)

// Parse consumes the whole source as a sequence of top-level
// expressions and returns its Root node, or the first Error encountered.
func Parse(source string) (ast.Node, error) {
	p := New(source)
	root := ast.New(ast.Root, "")

	for {
		p.skipSpace()
		if _, ok := p.peek(); !ok {
			return root, nil
		}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if expr != nil {
			root.AddChild(expr)
		}
	}
}

// expression parses one Expression. A comment yields a Comment node,
// which the reader skips (it carries no Value but is still valid
// input).
func (p *Parser) expression() (ast.Node, error) {
	p.skipSpace()
	r, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}

	switch {
	case r == '(':
		return p.sexpression()
	case r == '{':
		return p.qexpression()
	case r == '"':
		return p.string()
	case r == ';':
		return p.comment()
	case symbolRune(r):
		return p.symbolOrNumber()
	default:
		return nil, p.errorf("unexpected character %q", r)
	}
}

func (p *Parser) sexpression() (ast.Node, error) { return p.bracketed('(', ')', ast.Sexpression) }
func (p *Parser) qexpression() (ast.Node, error) { return p.bracketed('{', '}', ast.Qexpression) }

func (p *Parser) bracketed(open, close rune, tag string) (ast.Node, error) {
	node := ast.New(tag, "")
	node.AddChild(ast.New(ast.Punct, string(open)))
	p.advance() // consume open

	for {
		p.skipSpace()
		r, ok := p.peek()
		if !ok {
			return nil, p.errorf("unterminated %q, expected %q", open, close)
		}
		if r == close {
			p.advance()
			node.AddChild(ast.New(ast.Punct, string(close)))
			return node, nil
		}
		child, err := p.expression()
		if err != nil {
			return nil, err
		}
		if child != nil {
			node.AddChild(child)
		}
	}
}

func (p *Parser) string() (ast.Node, error) {
	startLine, startCol := p.line, p.col
	var raw []rune
	r, _ := p.advance() // opening quote
	raw = append(raw, r)

	for {
		c, ok := p.advance()
		if !ok {
			return nil, &Error{Line: startLine, Col: startCol, Msg: "unterminated string literal"}
		}
		raw = append(raw, c)
		if c == '\\' {
			esc, ok := p.advance()
			if !ok {
				return nil, &Error{Line: startLine, Col: startCol, Msg: "unterminated string literal"}
			}
			raw = append(raw, esc)
			continue
		}
		if c == '"' {
			break
		}
	}
	return ast.New(ast.String, string(raw)), nil
}

func (p *Parser) comment() (ast.Node, error) {
	var text []rune
	for {
		r, ok := p.peek()
		if !ok || r == '\n' {
			break
		}
		p.advance()
		text = append(text, r)
	}
	return ast.New(ast.Comment, string(text)), nil
}

// symbolOrNumber reads the maximal run of Symbol-class characters and
// classifies it as Number if the whole run matches the Number grammar
// `-?[0-9]+(\.[0-9]+)?`, else Symbol. This mirrors how a regex-based
// tokenizer like mpc greedily matches the longest token over two
// overlapping character classes, which is how `-` alone lexes as the
// subtraction Symbol while `-5` lexes as a negative Number.
func (p *Parser) symbolOrNumber() (ast.Node, error) {
	var text []rune
	for {
		r, ok := p.peek()
		if !ok || !symbolRune(r) {
			break
		}
		p.advance()
		text = append(text, r)
	}
	s := string(text)
	if isNumberLiteral(s) {
		return ast.New(ast.Number, s), nil
	}
	return ast.New(ast.Symbol, s), nil
}

func isNumberLiteral(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	// strconv.ParseFloat is more permissive than the grammar (accepts
	// "1e10", "+1", "inf", "nan"); restrict to -?digits(.digits)?.
	i := 0
	if s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '.' {
		return false
	}
	i++
	start = i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i == len(s) && i > start
}
