package testkit

import (
	"strings"
	"testing"

	"github.com/qtyi/luna-sub005/internal/lexer"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// flatTree wraps the raw token stream into Chunk(Block(BadStatement), EOF)
// so the checks can run without the parser.
func flatTree(t *testing.T, src string) *tree.Tree {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("kit.lua", []byte(src))
	file := fs.Get(id)
	toks := lexer.Tokenize(file, lexer.Options{})
	n := len(toks) - 1
	var stmts []tree.Child
	if n > 0 {
		children := make([]tree.Child, 0, n)
		for _, tok := range toks[:n] {
			children = append(children, tree.T(tok))
		}
		stmts = append(stmts, tree.N(tree.NewNode(syntax.BadStatement, children...)))
	}
	root := tree.NewNode(syntax.Chunk, tree.N(tree.NewNode(syntax.Block, stmts...)), tree.T(toks[n]))
	return &tree.Tree{File: file, Root: root}
}

func TestChecksPassOnTokenStream(t *testing.T) {
	for _, src := range []string{"", "x = 1 -- c\n", "#!/bin/lua\nprint [[a]]\n\n"} {
		tr := flatTree(t, src)
		if err := CheckLossless(tr); err != nil {
			t.Fatalf("lossless(%q): %v", src, err)
		}
		if err := CheckCoverage(tr); err != nil {
			t.Fatalf("coverage(%q): %v", src, err)
		}
	}
}

func TestCheckLosslessDetectsMismatch(t *testing.T) {
	tr := flatTree(t, "x = 1")
	tr.File.Content = []byte("x = 2")
	err := CheckLossless(tr)
	if err == nil || !strings.Contains(err.Error(), "byte 4") {
		t.Fatalf("want mismatch at byte 4, got %v", err)
	}
}

func TestCheckCoverageDetectsGap(t *testing.T) {
	tr := flatTree(t, "a b")
	bad := tr.Root.ChildNodes()[0].ChildNodes()[0]
	toks := tree.Tokens(bad)
	// drop the trailing space of 'a' so 'b' starts after a hole
	toks[0].Trailing = nil
	if err := CheckCoverage(tr); err == nil || !strings.Contains(err.Error(), "gap") {
		t.Fatalf("want gap error, got %v", err)
	}
}

func TestCheckCoverageRejectsWideMissingToken(t *testing.T) {
	tr := flatTree(t, "")
	eof := tr.EOF()
	bad := token.MissingToken(syntax.EndKeyword, eof.Span.File, 0)
	bad.Text = "end"
	root := tree.NewNode(syntax.Chunk,
		tree.N(tree.NewNode(syntax.Block, tree.N(tree.NewNode(syntax.BadStatement, tree.T(bad))))),
		tree.T(*eof))
	tr.Root = root
	if err := CheckCoverage(tr); err == nil {
		t.Fatal("want error for missing token with text")
	}
}
