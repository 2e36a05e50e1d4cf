package tree

import (
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// SyntaxNode is a positioned view over a green Node with a parent link.
// Views are created lazily from a root and cached in their parent.
type SyntaxNode struct {
	green    *Node
	parent   *SyntaxNode
	index    int    // position among the parent's children
	offset   uint32 // absolute start of the full span
	children []*SyntaxNode
	built    bool
}

// NewRoot wraps a green root whose full text starts at offset.
func NewRoot(n *Node, offset uint32) *SyntaxNode {
	return &SyntaxNode{green: n, offset: offset, index: -1}
}

func (s *SyntaxNode) Green() *Node        { return s.green }
func (s *SyntaxNode) Kind() syntax.Kind   { return s.green.kind }
func (s *SyntaxNode) Parent() *SyntaxNode { return s.parent }
func (s *SyntaxNode) IndexInParent() int  { return s.index }
func (s *SyntaxNode) FullStart() uint32   { return s.offset }
func (s *SyntaxNode) FullEnd() uint32     { return s.offset + s.green.width }
func (s *SyntaxNode) ContainsOffset(off uint32) bool {
	return off >= s.offset && off < s.FullEnd()
}

// ChildNodes returns views for the direct node children.
func (s *SyntaxNode) ChildNodes() []*SyntaxNode {
	if !s.built {
		s.build()
	}
	return s.children
}

func (s *SyntaxNode) build() {
	s.built = true
	off := s.offset
	for i, c := range s.green.children {
		if c.Node != nil {
			s.children = append(s.children, &SyntaxNode{
				green:  c.Node,
				parent: s,
				index:  i,
				offset: off,
			})
		}
		off += c.FullWidth()
	}
}

// Ancestors returns the chain of parents, nearest first.
func (s *SyntaxNode) Ancestors() []*SyntaxNode {
	var out []*SyntaxNode
	for p := s.parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

// FirstAncestor returns the nearest ancestor of kind k, or nil.
func (s *SyntaxNode) FirstAncestor(k syntax.Kind) *SyntaxNode {
	for p := s.parent; p != nil; p = p.parent {
		if p.green.kind == k {
			return p
		}
	}
	return nil
}

// FindNode returns the deepest node whose full span contains off.
func (s *SyntaxNode) FindNode(off uint32) *SyntaxNode {
	if !s.ContainsOffset(off) {
		return nil
	}
	cur := s
	for {
		var next *SyntaxNode
		for _, c := range cur.ChildNodes() {
			if c.ContainsOffset(off) {
				next = c
				break
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// FindToken returns the token whose full span (trivia included) contains
// off, together with the view of its parent node.
func (s *SyntaxNode) FindToken(off uint32) (*token.Token, *SyntaxNode) {
	n := s.FindNode(off)
	if n == nil {
		return nil, nil
	}
	pos := n.offset
	for _, c := range n.green.children {
		w := c.FullWidth()
		if c.Token != nil && off >= pos && off < pos+w {
			return c.Token, n
		}
		pos += w
	}
	return nil, n
}
