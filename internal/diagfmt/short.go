package diagfmt

import (
	"fmt"
	"io"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/source"
)

// Short печатает по одной строке на диагностику, без контекста:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
func Short(w io.Writer, items []diag.Diagnostic, fs *source.FileSet, mode PathMode) error {
	for i := range items {
		d := &items[i]
		loc := "<unknown>"
		if pos, ok := position(fs, d.Primary); ok {
			loc = fmt.Sprintf("%s:%d:%d", displayPath(fs, d.Primary.File, mode), pos.Line, pos.Col)
		}
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n", loc, d.Severity, d.Code.ID(), d.Message); err != nil {
			return err
		}
	}
	return nil
}

// Golden пишет стабильное представление для golden-файлов.
func Golden(w io.Writer, items []diag.Diagnostic, fs *source.FileSet, includeNotes bool) error {
	out := diag.FormatGoldenDiagnostics(items, fs, includeNotes)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
