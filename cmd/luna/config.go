package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/qtyi/luna-sub005/internal/lexer"
)

const configFileName = "luna.toml"

// projectConfig mirrors luna.toml. Zero values mean "not set".
type projectConfig struct {
	Parse parseConfig `toml:"parse"`
	Run   runConfig   `toml:"run"`
	Cache cacheConfig `toml:"cache"`
	Files filesConfig `toml:"files"`
}

type parseConfig struct {
	Kind           string `toml:"kind"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type runConfig struct {
	Jobs int `toml:"jobs"`
}

type cacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type filesConfig struct {
	Extensions []string `toml:"extensions"`
}

type loadedConfig struct {
	Path   string // пусто, если файл не найден
	Root   string
	Config projectConfig
	// defined хранит ключи, явно заданные в файле ("parse.max_diagnostics").
	defined map[string]bool
}

func (c *loadedConfig) isDefined(key string) bool {
	return c != nil && c.defined[key]
}

// findConfig walks from startDir up to the filesystem root looking for luna.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads explicit (when set) or the nearest luna.toml above startDir.
// A missing file is not an error: the result is an empty config.
func loadConfig(explicit, startDir string) (*loadedConfig, error) {
	path := explicit
	if path == "" {
		found, ok, err := findConfig(startDir)
		if err != nil {
			return nil, err
		}
		if !ok {
			return &loadedConfig{}, nil
		}
		path = found
	}
	return decodeConfig(path)
}

func decodeConfig(path string) (*loadedConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	defined := make(map[string]bool)
	for _, k := range meta.Keys() {
		defined[k.String()] = true
	}
	root := filepath.Dir(path)
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(root, cfg.Cache.Dir)
	}
	return &loadedConfig{Path: path, Root: root, Config: cfg, defined: defined}, nil
}

func validateConfig(cfg *projectConfig) error {
	if cfg.Parse.Kind != "" {
		if _, ok := lexer.ParseSourceKind(cfg.Parse.Kind); !ok {
			return fmt.Errorf("[parse].kind must be \"script\" or \"fragment\", got %q", cfg.Parse.Kind)
		}
	}
	if cfg.Parse.MaxDiagnostics < 0 {
		return fmt.Errorf("[parse].max_diagnostics must be >= 0")
	}
	if cfg.Run.Jobs < 0 {
		return fmt.Errorf("[run].jobs must be >= 0")
	}
	for i, ext := range cfg.Files.Extensions {
		if ext == "" {
			return fmt.Errorf("[files].extensions[%d] is empty", i)
		}
		if !strings.HasPrefix(ext, ".") {
			cfg.Files.Extensions[i] = "." + ext
		}
	}
	return nil
}
