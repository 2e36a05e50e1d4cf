package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/qtyi/luna-sub005/internal/source"
)

// FmtCheckFileResult captures the round-trip check of a single file.
type FmtCheckFileResult struct {
	Path string
	FmtCheckResult
	Err error // ошибка загрузки
}

// FmtCheckPaths runs RunFmtCheck over files and directories (recursively
// collecting sources by extension). Files named explicitly are checked
// whatever their extension.
func FmtCheckPaths(ctx context.Context, paths []string, opts Options) ([]FmtCheckFileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectSourceFiles(ctx, paths, opts)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("fmtcheck: no source files found")
	}

	results := make([]FmtCheckFileResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result := FmtCheckFileResult{Path: path}
		fileSet := source.NewFileSet()
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			result.Err = fmt.Errorf("load %s: %w", path, loadErr)
			results = append(results, result)
			continue
		}
		result.FmtCheckResult = RunFmtCheck(fileSet.Get(fileID), opts)
		results = append(results, result)
	}
	return results, nil
}

func collectSourceFiles(ctx context.Context, paths []string, opts Options) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !d.IsDir() && opts.matches(path) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
