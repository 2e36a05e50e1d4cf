package driver

import (
	"fmt"
	"time"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/source"
)

// DiagnoseStage определяет уровень диагностики
type DiagnoseStage string

const (
	DiagnoseStageTokenize DiagnoseStage = "tokenize"
	DiagnoseStageSyntax   DiagnoseStage = "syntax"
)

// ParseDiagnoseStage maps the --stage flag.
func ParseDiagnoseStage(s string) (DiagnoseStage, error) {
	switch DiagnoseStage(s) {
	case "", DiagnoseStageSyntax, "all":
		return DiagnoseStageSyntax, nil
	case DiagnoseStageTokenize:
		return DiagnoseStageTokenize, nil
	}
	return "", fmt.Errorf("unknown stage %q (want tokenize|syntax)", s)
}

type DiagnoseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
}

// Diagnose загружает файл и собирает диагностики до указанного уровня.
// Если в opts задан Timer, в конец добавляется диагностика OBS с таймингами.
func Diagnose(path string, stage DiagnoseStage, opts Options) (*DiagnoseResult, error) {
	fs := source.NewFileSet()
	start := time.Now()
	fileID, err := fs.Load(path)
	opts.Timer.Add("load", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return diagnoseFile(fs, fs.Get(fileID), stage, opts), nil
}

// DiagnoseSource is Diagnose over in-memory content (stdin, editors).
func DiagnoseSource(path string, src []byte, stage DiagnoseStage, opts Options) *DiagnoseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(path, src)
	return diagnoseFile(fs, fs.Get(fileID), stage, opts)
}

func diagnoseFile(fs *source.FileSet, file *source.File, stage DiagnoseStage, opts Options) *DiagnoseResult {
	var bag *diag.Bag
	if stage == DiagnoseStageTokenize {
		bag = tokenizeFile(fs, file, opts).Bag
	} else {
		_, bag = parseFile(file, opts)
	}
	if opts.Timer != nil {
		timing := TimingDiagnostic("file", file.Path, opts.Timer.Report())
		if !bag.Add(timing) {
			overflow := diag.NewBag(bag.Len() + 1)
			overflow.Add(timing)
			bag.Merge(overflow)
		}
	}
	return &DiagnoseResult{FileSet: fs, File: file, Bag: bag}
}
