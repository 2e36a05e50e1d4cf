package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/tree"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

var sampleTree = map[string]string{
	"main.lua":          "local m = require 'lib.util'\nprint(m.add(1, 2))\n",
	"lib/util.lua":      "local M = {}\nfunction M.add(a, b) return a + b end\nreturn M\n",
	"lib/broken.lua":    "function f(\n",
	"README.md":         "# docs\n",
	".git/hooks/x.lua":  "this is not lua at all (",
	"scripts/build.lua": "for i = 1, 3 do print(i) end\n",
}

func TestListFiles(t *testing.T) {
	dir := writeTree(t, sampleTree)
	files, err := ListFiles(dir, Options{})
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	require.Equal(t, []string{"lib/broken.lua", "lib/util.lua", "main.lua", "scripts/build.lua"}, rel)

	files, err = ListFiles(dir, Options{Extensions: []string{".md"}})
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestParseDir(t *testing.T) {
	dir := writeTree(t, sampleTree)
	fs, results, err := ParseDir(context.Background(), dir, Options{Jobs: 2})
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, r := range results {
		require.NotNil(t, r.Tree, r.Path)
		require.False(t, r.Cached)
		file := fs.Get(r.FileID)
		require.Equal(t, string(file.Content), tree.FullText(r.Tree.Root), r.Path)
		if filepath.Base(r.Path) == "broken.lua" {
			require.True(t, r.Bag.HasErrors())
		} else {
			require.Zero(t, r.Bag.Len(), r.Path)
		}
	}
}

func TestDiagnoseDirUsesCache(t *testing.T) {
	dir := writeTree(t, sampleTree)
	cache, err := NewDiskCache(t.TempDir())
	require.NoError(t, err)
	opts := Options{Cache: cache}

	_, first, err := DiagnoseDir(context.Background(), dir, opts)
	require.NoError(t, err)
	_, second, err := DiagnoseDir(context.Background(), dir, opts)
	require.NoError(t, err)
	require.Len(t, second, len(first))

	for i := range first {
		require.Nil(t, first[i].Tree)
		require.False(t, first[i].Cached)
		require.True(t, second[i].Cached, second[i].Path)
		require.Equal(t, summarize(first[i].Bag.Items()), summarize(second[i].Bag.Items()), first[i].Path)
	}

	// Изменённый файл снова разбирается.
	broken := filepath.Join(dir, "lib", "broken.lua")
	require.NoError(t, os.WriteFile(broken, []byte("function f() end\n"), 0o600))
	_, third, err := DiagnoseDir(context.Background(), dir, opts)
	require.NoError(t, err)
	for _, r := range third {
		if r.Path == broken {
			require.False(t, r.Cached)
			require.Zero(t, r.Bag.Len())
		}
	}
}

func summarize(items []diag.Diagnostic) []string {
	out := make([]string, 0, len(items))
	for _, d := range items {
		out = append(out, fmt.Sprintf("%s %s %v %q notes=%d fixes=%d",
			d.Severity, d.Code.ID(), d.Primary, d.Message, len(d.Notes), len(d.Fixes)))
	}
	return out
}

func TestDiagnoseDirProgressEvents(t *testing.T) {
	dir := writeTree(t, sampleTree)
	ch := make(chan Event, 64)
	_, results, err := DiagnoseDir(context.Background(), dir, Options{Progress: ChannelSink{Ch: ch}})
	require.NoError(t, err)
	close(ch)

	queued, done := map[string]bool{}, map[string]Status{}
	for evt := range ch {
		switch {
		case evt.Status == StatusQueued:
			queued[evt.File] = true
		case evt.Stage == StageParse && (evt.Status == StatusDone || evt.Status == StatusError):
			done[evt.File] = evt.Status
		}
	}
	require.Len(t, queued, len(results))
	require.Len(t, done, len(results))
	require.Equal(t, StatusError, done[filepath.Join(dir, "lib", "broken.lua")])
	require.Equal(t, StatusDone, done[filepath.Join(dir, "main.lua")])
}

func TestParseDirCanceled(t *testing.T) {
	dir := writeTree(t, sampleTree)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ParseDir(ctx, dir, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseDirEmpty(t *testing.T) {
	fs, results, err := ParseDir(context.Background(), t.TempDir(), Options{})
	require.NoError(t, err)
	require.NotNil(t, fs)
	require.Empty(t, results)
}
