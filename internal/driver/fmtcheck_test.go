package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qtyi/luna-sub005/internal/source"
)

func TestRunFmtCheck(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "clean", src: "local t = { 1, 2, [3] = 'x'; y = 4 }\nreturn t\n"},
		{name: "comments and long strings", src: "--[==[ doc ]==]\nlocal s = [[\nline]] -- tail\n"},
		{name: "broken", src: "function f(\n  if x then\n"},
		{name: "stray tokens", src: "end end ) x = 1"},
		{name: "empty", src: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			id := fs.AddVirtual(tt.name+".lua", []byte(tt.src))
			res := RunFmtCheck(fs.Get(id), Options{})
			require.True(t, res.OK, res.Message)
			require.Equal(t, -1, res.Offset)
		})
	}
}

func TestFirstDifference(t *testing.T) {
	require.Equal(t, -1, firstDifference("abc", []byte("abc")))
	require.Equal(t, 1, firstDifference("abc", []byte("axc")))
	require.Equal(t, 2, firstDifference("ab", []byte("abc")))
	require.Equal(t, 3, firstDifference("abcd", []byte("abc")))
}

func TestFmtCheckPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.lua"), []byte("return 1\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.lua"), []byte("x = (\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not lua"), 0o600))
	explicit := filepath.Join(dir, "script")
	require.NoError(t, os.WriteFile(explicit, []byte("#!/bin/lua\nprint(1)\n"), 0o600))

	results, err := FmtCheckPaths(context.Background(), []string{dir, explicit}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		require.NoError(t, r.Err)
		require.True(t, r.OK, "%s: %s", r.Path, r.Message)
	}

	_, err = FmtCheckPaths(context.Background(), []string{filepath.Join(dir, "missing")}, Options{})
	require.Error(t, err)
}
