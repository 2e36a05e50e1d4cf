package tree

import (
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// Child is either a nested node or a token; exactly one field is set.
type Child struct {
	Node  *Node
	Token *token.Token
}

// N wraps a node as a child.
func N(n *Node) Child { return Child{Node: n} }

// T wraps a token as a child. The token is copied so later edits to the
// caller's value do not leak into the tree.
func T(tok token.Token) Child { return Child{Token: &tok} }

func (c Child) IsToken() bool { return c.Token != nil }

func (c Child) Kind() syntax.Kind {
	if c.Token != nil {
		return c.Token.Kind
	}
	if c.Node != nil {
		return c.Node.kind
	}
	return syntax.None
}

// FullWidth is the number of source bytes the child covers, trivia included.
func (c Child) FullWidth() uint32 {
	if c.Token != nil {
		return c.Token.FullWidth()
	}
	if c.Node != nil {
		return c.Node.width
	}
	return 0
}

// Node is an immutable syntax node.
type Node struct {
	kind     syntax.Kind
	children []Child
	width    uint32
}

// NewNode builds a node. Nil children are dropped.
func NewNode(kind syntax.Kind, children ...Child) *Node {
	n := &Node{kind: kind, children: make([]Child, 0, len(children))}
	for _, c := range children {
		if c.Node == nil && c.Token == nil {
			continue
		}
		n.children = append(n.children, c)
		n.width += c.FullWidth()
	}
	return n
}

func (n *Node) Kind() syntax.Kind { return n.kind }

// Children returns the children in source order. Callers must not modify the slice.
func (n *Node) Children() []Child { return n.children }

func (n *Node) NumChildren() int { return len(n.children) }

func (n *Node) Child(i int) Child { return n.children[i] }

// FullWidth is the byte length of FullText(n).
func (n *Node) FullWidth() uint32 { return n.width }

// ChildNodes returns the direct node children, skipping tokens.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		if c.Node != nil {
			out = append(out, c.Node)
		}
	}
	return out
}

// Find returns the first direct child node of the given kind.
func (n *Node) Find(kind syntax.Kind) *Node {
	for _, c := range n.children {
		if c.Node != nil && c.Node.kind == kind {
			return c.Node
		}
	}
	return nil
}

// TokenOf returns the first direct child token of the given kind.
func (n *Node) TokenOf(kind syntax.Kind) *token.Token {
	for _, c := range n.children {
		if c.Token != nil && c.Token.Kind == kind {
			return c.Token
		}
	}
	return nil
}

// FirstToken returns the leftmost token, missing tokens included.
func (n *Node) FirstToken() *token.Token {
	for _, c := range n.children {
		if c.Token != nil {
			return c.Token
		}
		if t := c.Node.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the rightmost token.
func (n *Node) LastToken() *token.Token {
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if c.Token != nil {
			return c.Token
		}
		if t := c.Node.LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// Span covers the node's tokens without the outer trivia.
func (n *Node) Span() source.Span {
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return source.Span{}
	}
	return first.Span.Cover(last.Span)
}

// FullSpan covers the node including leading trivia of its first token and
// trailing trivia of its last token.
func (n *Node) FullSpan() source.Span {
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return source.Span{}
	}
	return first.FullSpan().Cover(last.FullSpan())
}

// HasMissing reports whether any token in the subtree was synthesized by the parser.
func (n *Node) HasMissing() bool {
	found := false
	Walk(n, func(c Child, _ int) bool {
		if c.Token != nil && c.Token.Missing {
			found = true
		}
		return !found
	})
	return found
}

// Tree is the result of parsing one file.
type Tree struct {
	File *source.File
	Root *Node // Chunk
}

// Block returns the root Block of the chunk.
func (t *Tree) Block() *Node {
	if t == nil || t.Root == nil {
		return nil
	}
	return t.Root.Find(syntax.Block)
}

// EOF returns the end-of-file token that closes the chunk.
func (t *Tree) EOF() *token.Token {
	if t == nil || t.Root == nil {
		return nil
	}
	return t.Root.TokenOf(syntax.EndOfFileToken)
}
