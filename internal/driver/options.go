package driver

import (
	"strings"

	"github.com/qtyi/luna-sub005/internal/lexer"
	"github.com/qtyi/luna-sub005/internal/observ"
)

// DefaultExtensions are the file suffixes picked up by directory runs.
var DefaultExtensions = []string{".lua"}

// Options configures the driver entry points. The zero value parses scripts
// with unlimited diagnostics on GOMAXPROCS workers.
type Options struct {
	Kind           lexer.SourceKind
	MaxDiagnostics int // <= 0: без ограничения
	Jobs           int // <= 0: GOMAXPROCS
	Extensions     []string

	Logger   *observ.Logger
	Timer    *observ.Timer
	Cache    *DiskCache
	Progress ProgressSink
}

func (o *Options) matches(path string) bool {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	for _, ext := range exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
