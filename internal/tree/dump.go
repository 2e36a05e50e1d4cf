package tree

import (
	"fmt"
	"strings"
)

// DumpOptions controls Dump output.
type DumpOptions struct {
	Trivia bool // print leading/trailing trivia under each token
	Values bool // print decoded literal values
}

// Dump renders n as an indented outline, one child per line:
//
//	LocalDeclarationStatement
//	  LocalKeyword "local"
//	  NameList
//	    ...
//
// Missing tokens print as <missing>.
func Dump(n *Node, opts DumpOptions) string {
	var b strings.Builder
	b.WriteString(n.kind.String())
	b.WriteByte('\n')
	Walk(n, func(c Child, depth int) bool {
		indent := strings.Repeat("  ", depth)
		if c.Node != nil {
			fmt.Fprintf(&b, "%s%s\n", indent, c.Node.kind)
			return true
		}
		tok := c.Token
		if opts.Trivia {
			for _, tv := range tok.Leading {
				fmt.Fprintf(&b, "%s  [lead %s %q]\n", indent, tv.Kind, tv.FullText())
			}
		}
		switch {
		case tok.Missing:
			fmt.Fprintf(&b, "%s%s <missing>", indent, tok.Kind)
		default:
			fmt.Fprintf(&b, "%s%s %q", indent, tok.Kind, tok.Text)
		}
		if opts.Values && !tok.Value.IsNone() {
			fmt.Fprintf(&b, " = %s", tok.Value)
		}
		b.WriteByte('\n')
		if opts.Trivia {
			for _, tv := range tok.Trailing {
				fmt.Fprintf(&b, "%s  [trail %s %q]\n", indent, tv.Kind, tv.FullText())
			}
		}
		return true
	})
	return b.String()
}

// Shape renders only the node structure in a compact nested form, e.g.
// "AdditionExpression(NumericLiteralExpression, MultiplicationExpression(...))".
func Shape(n *Node) string {
	var b strings.Builder
	writeShape(&b, n)
	return b.String()
}

func writeShape(b *strings.Builder, n *Node) {
	b.WriteString(n.kind.String())
	kids := n.ChildNodes()
	if len(kids) == 0 {
		return
	}
	b.WriteByte('(')
	for i, k := range kids {
		if i > 0 {
			b.WriteString(", ")
		}
		writeShape(b, k)
	}
	b.WriteByte(')')
}
