package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), "[run]\njobs = 2\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := findConfig(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, configFileName), path)
}

func TestLoadConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), `
[parse]
kind = "fragment"
max_diagnostics = 0

[run]
jobs = 3

[cache]
enabled = true
dir = ".luna-cache"

[files]
extensions = ["lua", ".luau"]
`)
	cfg, err := loadConfig("", root)
	require.NoError(t, err)
	require.Equal(t, "fragment", cfg.Config.Parse.Kind)
	require.True(t, cfg.isDefined("parse.max_diagnostics"))
	require.False(t, cfg.isDefined("parse.missing"))
	require.Equal(t, 3, cfg.Config.Run.Jobs)
	require.True(t, cfg.Config.Cache.Enabled)
	require.Equal(t, filepath.Join(root, ".luna-cache"), cfg.Config.Cache.Dir)
	require.Equal(t, []string{".lua", ".luau"}, cfg.Config.Files.Extensions)
}

func TestLoadConfigMissingIsEmpty(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := loadConfig("", ".")
	require.NoError(t, err)
	require.Empty(t, cfg.Path)
	require.False(t, cfg.isDefined("parse.kind"))
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "syntax", content: "[parse\n", want: "failed to parse TOML"},
		{name: "unknown key", content: "[parse]\ndialect = \"5.1\"\n", want: "unknown keys: parse.dialect"},
		{name: "bad kind", content: "[parse]\nkind = \"module\"\n", want: "[parse].kind"},
		{name: "negative jobs", content: "[run]\njobs = -1\n", want: "[run].jobs"},
		{name: "empty extension", content: "[files]\nextensions = [\"\"]\n", want: "[files].extensions[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), configFileName)
			writeFile(t, path, tt.content)
			_, err := loadConfig(path, "")
			require.ErrorContains(t, err, tt.want)
		})
	}
}
