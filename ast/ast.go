// Package ast defines the tree shape produced by the parser and
// consumed by the reader: every node exposes a grammar tag, its
// matched source text, and an ordered list of children. This
// mirrors the node shape the original C implementation received from
// the mpc parser-combinator library (tag/contents/children), kept as
// the seam between the hand-rolled recursive-descent parser and the
// reader so the two can be tested independently.
package ast

// Node tags, one per grammar rule, plus Root for the synthetic
// top-level program node (mpc's "> " tag for its root).
const (
	Root        = "Root"
	Sexpression = "Sexpression"
	Qexpression = "Qexpression"
	Number      = "Number"
	Symbol      = "Symbol"
	String      = "String"
	Comment     = "Comment"

	// Punct tags every literal bracket/delimiter node so the Reader can
	// skip them without inspecting Contents.
	Punct = "Punct"
)

// Node is one element of a parsed AST.
type Node interface {
	Tag() string
	Contents() string
	Children() []Node
}

// Tree is the concrete, mutable Node implementation the parser builds.
type Tree struct {
	tag      string
	contents string
	children []Node
}

// New constructs a leaf or branch node. Pass children as they become
// available; AddChild also works for incremental construction.
func New(tag, contents string, children ...Node) *Tree {
	return &Tree{tag: tag, contents: contents, children: children}
}

// Tag returns the grammar rule tag.
func (t *Tree) Tag() string { return t.tag }

// Contents returns the matched source text (meaningful for leaves;
// empty for Sexpression/Qexpression/Root nodes).
func (t *Tree) Contents() string { return t.contents }

// Children returns the node's children in source order.
func (t *Tree) Children() []Node { return t.children }

// AddChild appends a child node in place.
func (t *Tree) AddChild(c Node) { t.children = append(t.children, c) }
