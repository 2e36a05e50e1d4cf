package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/lexer"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/testkit"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// parseSource parses src as a script and checks the structural invariants
// every tree must satisfy, valid input or not.
func parseSource(t *testing.T, src string) Result {
	t.Helper()
	return parseWith(t, src, Options{Kind: lexer.SourceScript})
}

func parseWith(t *testing.T, src string, opts Options) Result {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lua", []byte(src))
	res := Parse(fs.Get(id), opts)
	if err := testkit.CheckLossless(res.Tree); err != nil {
		t.Fatalf("lossless check failed for %q: %v", src, err)
	}
	if err := testkit.CheckCoverage(res.Tree); err != nil {
		t.Fatalf("coverage check failed for %q: %v", src, err)
	}
	return res
}

// mustParse requires src to parse without diagnostics.
func mustParse(t *testing.T, src string) Result {
	t.Helper()
	res := parseSource(t, src)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %s", src, diagnosticsSummary(res.Diagnostics))
	}
	return res
}

func statements(res Result) []*tree.Node {
	return res.Tree.Block().ChildNodes()
}

// firstStatement returns the shape of the first statement of src.
func firstStatement(t *testing.T, src string) *tree.Node {
	t.Helper()
	stmts := statements(mustParse(t, src))
	if len(stmts) == 0 {
		t.Fatalf("no statements in %q", src)
	}
	return stmts[0]
}

// exprShape parses "return <src>" and returns the shape of the expression.
func exprShape(t *testing.T, src string) string {
	t.Helper()
	ret := firstStatement(t, "return "+src)
	list := ret.Find(syntax.ExpressionList)
	if list == nil {
		t.Fatalf("no expression list in %q", src)
	}
	return tree.Shape(list.ChildNodes()[0])
}

func codes(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func hasCode(diags []diag.Diagnostic, c diag.Code) bool {
	for _, d := range diags {
		if d.Code == c {
			return true
		}
	}
	return false
}

func diagnosticsSummary(diags []diag.Diagnostic) string {
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
