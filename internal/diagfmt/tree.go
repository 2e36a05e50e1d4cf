package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// NodeOutput is one element of a JSON tree dump: a node with Children or,
// when Token is set, a token leaf.
type NodeOutput struct {
	Kind     string       `json:"kind"`
	Range    string       `json:"range,omitempty"`
	Token    *TokenOutput `json:"token,omitempty"`
	Children []NodeOutput `json:"children,omitempty"`
}

// FormatTreePretty печатает дерево с ветками ├─ / └─.
func FormatTreePretty(w io.Writer, t *tree.Tree, fs *source.FileSet, opts TreeOpts) error {
	tp := treePrinter{w: w, fs: fs, opts: opts}
	fmt.Fprintf(w, "%s%s\n", t.Root.Kind(), tp.rangeOf(t.Root.Span()))
	tp.children(t.Root, "")
	return tp.err
}

type treePrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts TreeOpts
	err  error
}

func (tp *treePrinter) printf(format string, args ...any) {
	if tp.err != nil {
		return
	}
	_, tp.err = fmt.Fprintf(tp.w, format, args...)
}

func (tp *treePrinter) rangeOf(sp source.Span) string {
	if !tp.opts.Spans || tp.fs == nil || !tp.fs.Has(sp.File) {
		return ""
	}
	start, end := tp.fs.Resolve(sp)
	return fmt.Sprintf(" @%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func (tp *treePrinter) children(n *tree.Node, prefix string) {
	kids := n.Children()
	for i, c := range kids {
		branch, next := "├─ ", "│  "
		if i == len(kids)-1 {
			branch, next = "└─ ", "   "
		}
		if c.Node != nil {
			tp.printf("%s%s%s%s\n", prefix, branch, c.Node.Kind(), tp.rangeOf(c.Node.Span()))
			tp.children(c.Node, prefix+next)
			continue
		}
		tok := c.Token
		if tp.opts.Trivia {
			for j := range tok.Leading {
				tp.printf("%s%s[lead %s %q]\n", prefix, next, tok.Leading[j].Kind, tok.Leading[j].FullText())
			}
		}
		if tok.Missing {
			tp.printf("%s%s%s <missing>", prefix, branch, tok.Kind)
		} else {
			tp.printf("%s%s%s %q%s", prefix, branch, tok.Kind, tok.Text, tp.rangeOf(tok.Span))
		}
		if tp.opts.Values && !tok.Value.IsNone() {
			tp.printf(" = %s", tok.Value)
		}
		tp.printf("\n")
		if tp.opts.Trivia {
			for j := range tok.Trailing {
				tp.printf("%s%s[trail %s %q]\n", prefix, next, tok.Trailing[j].Kind, tok.Trailing[j].FullText())
			}
		}
	}
}

// BuildTreeOutput converts n into its JSON form.
func BuildTreeOutput(n *tree.Node, fs *source.FileSet, opts TreeOpts) NodeOutput {
	tp := treePrinter{fs: fs, opts: opts}
	return tp.node(n)
}

func (tp *treePrinter) node(n *tree.Node) NodeOutput {
	out := NodeOutput{Kind: n.Kind().String(), Range: tp.rangeOf(n.Span())}
	for _, c := range n.Children() {
		if c.Node != nil {
			out.Children = append(out.Children, tp.node(c.Node))
			continue
		}
		tok := tokenOutput(c.Token, TokenOpts{Trivia: tp.opts.Trivia, Values: tp.opts.Values})
		out.Children = append(out.Children, NodeOutput{
			Kind:  tok.Kind,
			Range: tp.rangeOf(c.Token.Span),
			Token: &tok,
		})
	}
	return out
}

// FormatTreeJSON выводит дерево в JSON формате.
func FormatTreeJSON(w io.Writer, t *tree.Tree, fs *source.FileSet, opts TreeOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTreeOutput(t.Root, fs, opts))
}
