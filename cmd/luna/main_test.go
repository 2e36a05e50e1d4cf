package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qtyi/luna-sub005/internal/diagfmt"
)

// runCLI executes luna with args inside dir and returns stdout, stderr and the error.
func runCLI(t *testing.T, dir, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(dir)
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDiagCleanFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.lua"), "local x <const> = 1\nreturn x\n")

	out, _, err := runCLI(t, dir, "", "diag", "ok.lua")
	require.NoError(t, err)
	require.Equal(t, "no diagnostics\n", out)
}

func TestDiagErrorsExitOne(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.lua"), "if x then\n")

	out, _, err := runCLI(t, dir, "", "--color", "off", "diag", "--format", "short", "bad.lua")
	var exit exitError
	require.ErrorAs(t, err, &exit)
	require.Equal(t, 1, exit.code)
	require.Contains(t, out, "bad.lua:")
	require.Contains(t, out, "ERROR")
}

func TestDiagStdinJSON(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "x = (1\n", "diag", "--format", "json", "-")
	require.Error(t, err)

	var decoded diagfmt.DiagnosticsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.NotZero(t, decoded.Count)
	require.Equal(t, "<stdin>", decoded.Diagnostics[0].Location.File)
}

func TestDiagDirectoryWithCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "a.lua"), "return 1\n")
	writeFile(t, filepath.Join(dir, "src", "b.lua"), "return +\n")
	cacheDir := filepath.Join(dir, "cache")

	args := []string{"--color", "off", "diag", "--format", "golden", "--cache", "--cache-dir", cacheDir, "src"}
	first, _, err := runCLI(t, dir, "", args...)
	require.Error(t, err)
	second, _, err := runCLI(t, dir, "", args...)
	require.Error(t, err)
	require.Equal(t, first, second)
	require.Contains(t, first, "b.lua")
	require.DirExists(t, filepath.Join(cacheDir, "diags"))
}

func TestDiagConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, configFileName), "[parse]\nkind = \"fragment\"\n")
	writeFile(t, filepath.Join(dir, "s.lua"), "#!/usr/bin/lua\nreturn 1\n")

	_, _, err := runCLI(t, dir, "", "diag", "--format", "short", "s.lua")
	require.Error(t, err, "fragments reject a shebang line")

	_, _, err = runCLI(t, dir, "", "--kind", "script", "diag", "s.lua")
	require.NoError(t, err, "flags override luna.toml")
}

func TestParsePrintsTree(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "return 1", "parse", "--values", "-")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Chunk\n"), out)
	require.Contains(t, out, `NumericLiteralToken "1" = 1`)
}

func TestParseDirectorySummary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.lua"), "return 1\n")
	writeFile(t, filepath.Join(dir, "b.lua"), "return )\n")

	out, stderr, err := runCLI(t, dir, "", "--color", "off", "parse", ".")
	require.NoError(t, err)
	require.Contains(t, out, "a.lua: ok")
	require.Regexp(t, `b\.lua: \d+ diagnostic\(s\)`, out)
	require.Contains(t, stderr, "ERROR")
}

func TestTokenizeJSON(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "x = 1", "tokenize", "--format", "json", "-")
	require.NoError(t, err)
	var toks []diagfmt.TokenOutput
	require.NoError(t, json.Unmarshal([]byte(out), &toks))
	require.Len(t, toks, 4)
	require.Equal(t, "EndOfFileToken", toks[3].Kind)
}

func TestFmtCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.lua"), "local a = {1, 2}\n")
	writeFile(t, filepath.Join(dir, "b.lua"), "while true do\n")

	out, _, err := runCLI(t, dir, "", "fmtcheck", ".")
	require.NoError(t, err)
	require.Contains(t, out, "fmt-check: OK")
	require.Contains(t, out, "2 file(s) checked, 0 failed")
}

func TestVersionJSON(t *testing.T) {
	out, _, err := runCLI(t, t.TempDir(), "", "version", "--format", "json", "--full")
	require.NoError(t, err)
	var payload versionPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, "luna", payload.Tool)
	require.NotEmpty(t, payload.Version)
	require.Equal(t, "unknown", payload.GitCommit)
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := runCLI(t, t.TempDir(), "", "diag", "--format", "xml", "-")
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := readUIMode("maybe")
	require.Error(t, err)

	var buf bytes.Buffer
	require.False(t, shouldUseTUI(uiModeAuto, &buf))
	require.True(t, shouldUseTUI(uiModeOn, &buf))
}

func TestFixListAndApply(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.lua")
	writeFile(t, path, "while x do\n")

	out, _, err := runCLI(t, dir, "", "fix", "--list", "f.lua")
	require.NoError(t, err)
	require.Contains(t, out, "insert 'end'")

	out, _, err = runCLI(t, dir, "", "fix", "--dry-run", "f.lua")
	require.NoError(t, err)
	require.Contains(t, out, "Would update files:")
	require.Contains(t, out, "while x do end")

	_, _, err = runCLI(t, dir, "", "fix", "--all", "f.lua")
	require.NoError(t, err)
	_, _, err = runCLI(t, dir, "", "diag", "f.lua")
	require.NoError(t, err, "fixed file must be clean")
}

func TestFixFlagConflicts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "f.lua"), "return 1\n")
	_, _, err := runCLI(t, dir, "", "fix", "--all", "--once", "f.lua")
	require.ErrorContains(t, err, "mutually exclusive")

	out, _, err := runCLI(t, dir, "", "fix", "f.lua")
	require.NoError(t, err)
	require.Contains(t, out, "No applicable fixes found.")
}
