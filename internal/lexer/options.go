package lexer

import (
	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/observ"
	"github.com/qtyi/luna-sub005/internal/source"
)

// SourceKind distinguishes a standalone script from an embedded or REPL fragment.
type SourceKind uint8

const (
	// SourceScript tolerates a leading '#' line (shebang) and keeps it as trivia.
	SourceScript SourceKind = iota
	// SourceFragment reports a leading "#!" line.
	SourceFragment
)

func (k SourceKind) String() string {
	if k == SourceFragment {
		return "fragment"
	}
	return "script"
}

// ParseSourceKind maps config and flag values ("script", "fragment").
func ParseSourceKind(s string) (SourceKind, bool) {
	switch s {
	case "", "script":
		return SourceScript, true
	case "fragment", "repl":
		return SourceFragment, true
	}
	return SourceScript, false
}

type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки игнорируем (но продолжаем лексить)
	Kind     SourceKind
	Logger   *observ.Logger
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}
