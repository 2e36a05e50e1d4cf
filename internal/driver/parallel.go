package driver

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// ParseDirResult содержит результат разбора одного файла
type ParseDirResult struct {
	Path   string        // путь к файлу
	FileID source.FileID // ID файла в FileSet
	Tree   *tree.Tree    // nil, если файл не загрузился или взят из кеша
	Bag    *diag.Bag     // Диагностики
	Cached bool
}

// ListFiles возвращает отсортированный список исходников в директории.
// Скрытые каталоги (".git" и т.п.) пропускаются.
func ListFiles(dir string, opts Options) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}
		if opts.matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir парсит все исходники директории параллельно и сохраняет деревья.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	return runDir(ctx, dir, opts, true)
}

// DiagnoseDir работает как ParseDir, но нужны только диагностики: деревья не
// сохраняются, а при opts.Cache результаты берутся из кеша по хешу содержимого.
func DiagnoseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	return runDir(ctx, dir, opts, false)
}

func runDir(ctx context.Context, dir string, opts Options, keepTrees bool) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListFiles(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// FileSet не потокобезопасен: все файлы добавляются до запуска воркеров.
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	loadStart := time.Now()
	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			loadErrors[i] = loadErr
			fileID = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = fileID
	}
	opts.Timer.Add("load", time.Since(loadStart))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			start := time.Now()
			file := fileSet.Get(fileIDs[i])
			res := ParseDirResult{Path: path, FileID: file.ID}

			if loadErr, failed := loadErrors[i]; failed {
				res.Bag = diag.NewBag(opts.MaxDiagnostics)
				res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: file.ID},
					"failed to load file: "+loadErr.Error()))
				results[i] = res
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr, Diagnostics: 1})
				return nil
			}

			if !keepTrees && opts.Cache != nil {
				emit(opts.Progress, Event{File: path, Stage: StageCache, Status: StatusWorking})
				if bag, ok := lookupCache(file, opts); ok {
					res.Bag, res.Cached = bag, true
					results[i] = res
					emit(opts.Progress, finished(path, bag, true, time.Since(start)))
					return nil
				}
			}

			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
			t, bag := parseFile(file, opts)
			res.Bag = bag
			if keepTrees {
				res.Tree = t
			}
			if !keepTrees && opts.Cache != nil {
				storeCache(file, bag, opts)
			}
			results[i] = res
			emit(opts.Progress, finished(path, bag, false, time.Since(start)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func finished(path string, bag *diag.Bag, cached bool, elapsed time.Duration) Event {
	status := StatusDone
	if bag.HasErrors() {
		status = StatusError
	}
	return Event{
		File:        path,
		Stage:       StageParse,
		Status:      status,
		Diagnostics: bag.Len(),
		Cached:      cached,
		Elapsed:     elapsed,
	}
}

func lookupCache(file *source.File, opts Options) (*diag.Bag, bool) {
	var payload DiskPayload
	hit, err := opts.Cache.Get(cacheKey(file.Hash, opts), &payload)
	if err != nil {
		opts.Logger.Warn("cache read failed", slog.String("path", file.Path), slog.String("error", err.Error()))
		return nil, false
	}
	if !hit || payload.ContentHash != file.Hash {
		return nil, false
	}
	bag := diag.NewBag(opts.MaxDiagnostics)
	for _, d := range payload.diagnostics(file.ID) {
		bag.Add(d)
	}
	opts.Logger.Debug("cache hit", slog.String("path", file.Path), slog.Int("diagnostics", bag.Len()))
	return bag, true
}

func storeCache(file *source.File, bag *diag.Bag, opts Options) {
	payload := toDiskPayload(file, uint8(opts.Kind), bag.Items())
	if err := opts.Cache.Put(cacheKey(file.Hash, opts), payload); err != nil {
		opts.Logger.Warn("cache write failed", slog.String("path", file.Path), slog.String("error", err.Error()))
	}
}
