package diagfmt

import "github.com/qtyi/luna-sub005/internal/source"

// displayPath formats the path of file id according to mode. Unknown ids
// render as "<unknown>".
func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	if fs == nil || !fs.Has(id) {
		return "<unknown>"
	}
	f := fs.Get(id)
	switch mode {
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	default:
		return f.FormatPath(mode.String(), "")
	}
}

// position resolves the start of sp; ok is false for unknown files.
func position(fs *source.FileSet, sp source.Span) (source.LineCol, bool) {
	if fs == nil || !fs.Has(sp.File) {
		return source.LineCol{}, false
	}
	start, _ := fs.Resolve(sp)
	return start, true
}
