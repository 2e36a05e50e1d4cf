package tree

import (
	"strings"

	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// Walk visits n's children depth-first in source order. fn receives each
// child and its depth below n (direct children have depth 1); returning false
// skips the subtree of a node child, and stops nothing else.
func Walk(n *Node, fn func(c Child, depth int) bool) {
	walk(n, 1, fn)
}

func walk(n *Node, depth int, fn func(Child, int) bool) {
	for _, c := range n.children {
		if !fn(c, depth) {
			continue
		}
		if c.Node != nil {
			walk(c.Node, depth+1, fn)
		}
	}
}

// Inspect calls fn for n and every descendant node in pre-order. If fn
// returns false the node's children are not visited.
func Inspect(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.children {
		if c.Node != nil {
			Inspect(c.Node, fn)
		}
	}
}

// Tokens returns the tokens of the subtree in source order. Tokens held in
// skipped-token trivia are not included; they are trivia.
func Tokens(n *Node) []*token.Token {
	out := make([]*token.Token, 0, 16)
	Walk(n, func(c Child, _ int) bool {
		if c.Token != nil {
			out = append(out, c.Token)
		}
		return true
	})
	return out
}

// WriteFullText appends the exact source text of n to b.
func WriteFullText(b *strings.Builder, n *Node) {
	for _, c := range n.children {
		if c.Token != nil {
			c.Token.WriteFullText(b)
		} else {
			WriteFullText(b, c.Node)
		}
	}
}

// FullText reproduces the source covered by n, trivia included. For a
// Chunk it equals the parsed file byte for byte.
func FullText(n *Node) string {
	var b strings.Builder
	b.Grow(int(n.width))
	WriteFullText(&b, n)
	return b.String()
}

// Text is FullText without the leading trivia of the first token and the
// trailing trivia of the last one.
func Text(n *Node) string {
	full := FullText(n)
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return full
	}
	var lead, trail uint32
	for i := range first.Leading {
		lead += first.Leading[i].FullWidth()
	}
	for i := range last.Trailing {
		trail += last.Trailing[i].FullWidth()
	}
	if int(lead+trail) > len(full) {
		return ""
	}
	return full[lead : uint32(len(full))-trail]
}

// ArgumentsForm reports how the arguments of an InvocationExpression were
// written: ArgumentList, StringArgument or TableArgument. It returns None for
// any other node.
func ArgumentsForm(n *Node) syntax.Kind {
	if n == nil || n.kind != syntax.InvocationExpression {
		return syntax.None
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if c := n.children[i]; c.Node != nil && syntax.IsArguments(c.Node.kind) {
			return c.Node.kind
		}
	}
	return syntax.None
}

// Arguments returns the argument expressions of an InvocationExpression in
// order, whatever its argument form.
func Arguments(n *Node) []*Node {
	form := ArgumentsForm(n)
	if form == syntax.None {
		return nil
	}
	args := n.Find(form)
	switch form {
	case syntax.ArgumentList:
		if list := args.Find(syntax.ExpressionList); list != nil {
			return ListItems(list)
		}
		return nil
	default:
		return args.ChildNodes()
	}
}

// ListItems returns the element nodes of a comma-separated list node
// (ExpressionList, NameList, ParameterList, FieldList), skipping separators.
func ListItems(n *Node) []*Node {
	if n == nil {
		return nil
	}
	return n.ChildNodes()
}

// Callee returns the called expression of an InvocationExpression.
func Callee(n *Node) *Node {
	if n == nil || n.kind != syntax.InvocationExpression || len(n.children) == 0 {
		return nil
	}
	return n.children[0].Node
}
