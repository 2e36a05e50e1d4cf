package driver

import (
	"fmt"
	"log/slog"
	"time"

	"fortio.org/safecast"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/lexer"
	"github.com/qtyi/luna-sub005/internal/parser"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/tree"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *tree.Tree
	// Bag holds the sorted diagnostics, capped at MaxDiagnostics.
	Bag *diag.Bag
}

// Diagnostics returns the sorted diagnostics of the parse.
func (r *ParseResult) Diagnostics() []diag.Diagnostic {
	return r.Bag.Items()
}

// ParseSource parses src as one chunk. It never fails: the tree always
// prints back to src and every problem is a diagnostic.
func ParseSource(path string, src []byte, kind lexer.SourceKind, maxDiagnostics int) *ParseResult {
	return ParseSourceWithOptions(path, src, Options{Kind: kind, MaxDiagnostics: maxDiagnostics})
}

// ParseSourceWithOptions is ParseSource with logging and timing.
func ParseSourceWithOptions(path string, src []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(path, src)
	file := fs.Get(fileID)
	t, bag := parseFile(file, opts)
	return &ParseResult{FileSet: fs, File: file, Tree: t, Bag: bag}
}

// Parse loads path from disk and parses it. Only I/O problems are errors.
func Parse(path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	start := time.Now()
	fileID, err := fs.Load(path)
	opts.Timer.Add("load", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	t, bag := parseFile(file, opts)
	return &ParseResult{FileSet: fs, File: file, Tree: t, Bag: bag}, nil
}

// parseFile is the single place where the driver calls the parser.
func parseFile(file *source.File, opts Options) (*tree.Tree, *diag.Bag) {
	bag := diag.NewBag(opts.MaxDiagnostics)
	// парсер не копит ошибок больше, чем поместится в bag
	maxErrors, err := safecast.Conv[uint](bag.Cap())
	if err != nil {
		maxErrors = 0
	}
	start := time.Now()
	res := parser.Parse(file, parser.Options{
		Kind:      opts.Kind,
		MaxErrors: maxErrors,
		Logger:    opts.Logger,
	})
	elapsed := time.Since(start)
	opts.Timer.Add("lex+parse", elapsed)

	for _, d := range res.Diagnostics {
		if !bag.Add(d) {
			break
		}
	}
	opts.Logger.Debug("driver parsed file",
		slog.String("path", file.Path),
		slog.Int("diagnostics", bag.Len()),
		slog.Duration("elapsed", elapsed))
	return res.Tree, bag
}
