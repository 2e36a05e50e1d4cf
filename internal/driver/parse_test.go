package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/lexer"
	"github.com/qtyi/luna-sub005/internal/observ"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/tree"
)

func TestParseSourceRoundTrip(t *testing.T) {
	src := "#!/usr/bin/env lua\nlocal function f(...) return select('#', ...) end\nprint(f(1, 2))\n"
	res := ParseSource("main.lua", []byte(src), lexer.SourceScript, 0)

	require.Empty(t, res.Diagnostics())
	require.Equal(t, src, tree.FullText(res.Tree.Root))
	require.Equal(t, syntax.Chunk, res.Tree.Root.Kind())
	require.Equal(t, "main.lua", res.File.Path)
}

func TestParseSourceFragmentRejectsShebang(t *testing.T) {
	src := "#!/usr/bin/env lua\nreturn 1\n"
	res := ParseSource("frag.lua", []byte(src), lexer.SourceFragment, 0)

	require.NotEmpty(t, res.Diagnostics())
	require.Equal(t, src, tree.FullText(res.Tree.Root))
}

func TestParseSourceDiagnosticsSortedAndCapped(t *testing.T) {
	src := "x = = 1\ny = = 2\nz = = 3\nw = = 4\n"

	all := ParseSource("bad.lua", []byte(src), lexer.SourceScript, 0).Diagnostics()
	require.GreaterOrEqual(t, len(all), 2)
	for i := 1; i < len(all); i++ {
		require.False(t, diag.Less(all[i], all[i-1]), "diagnostics out of order at %d", i)
	}

	capped := ParseSource("bad.lua", []byte(src), lexer.SourceScript, 1)
	require.Len(t, capped.Diagnostics(), 1)
	require.Equal(t, all[0], capped.Diagnostics()[0])
	require.Equal(t, src, tree.FullText(capped.Tree.Root))
}

func TestParseFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.lua")
	content := "\xEF\xBB\xBFreturn 1\r\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	timer := observ.NewTimer()
	res, err := Parse(path, Options{Timer: timer})
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics())
	// BOM снимается при загрузке, CRLF остаётся.
	require.Equal(t, "return 1\r\n", tree.FullText(res.Tree.Root))

	names := map[string]bool{}
	for _, p := range timer.Report().Phases {
		names[p.Name] = true
	}
	require.True(t, names["load"] && names["lex+parse"], "phases: %+v", timer.Report().Phases)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.lua"), Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestTokenizeSource(t *testing.T) {
	res := TokenizeSource("t.lua", []byte("local s = 'x"), Options{})
	require.NotEmpty(t, res.Tokens)
	require.Equal(t, syntax.EndOfFileToken, res.Tokens[len(res.Tokens)-1].Kind)
	require.True(t, res.Bag.HasErrors(), "unfinished string must be reported")
}

func TestDiagnoseStages(t *testing.T) {
	src := []byte("local = 1\n")

	lexOnly := DiagnoseSource("d.lua", src, DiagnoseStageTokenize, Options{})
	require.Zero(t, lexOnly.Bag.Len())

	full := DiagnoseSource("d.lua", src, DiagnoseStageSyntax, Options{})
	require.True(t, full.Bag.HasErrors())

	timed := DiagnoseSource("d.lua", src, DiagnoseStageSyntax, Options{Timer: observ.NewTimer()})
	last := timed.Bag.Items()[timed.Bag.Len()-1]
	require.Equal(t, diag.ObsTimings, last.Code)
	require.Len(t, last.Notes, 1)
	require.Contains(t, last.Notes[0].Msg, `"kind":"file"`)

	_, err := ParseDiagnoseStage("sema")
	require.Error(t, err)
	st, err := ParseDiagnoseStage("")
	require.NoError(t, err)
	require.Equal(t, DiagnoseStageSyntax, st)
}
