package diag

import (
	"github.com/qtyi/luna-sub005/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit replaces Span with NewText; an empty Span is an insertion.
type FixEdit struct {
	Span    source.Span
	NewText string
}

type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// Pos returns the byte offset the diagnostic points at.
func (d Diagnostic) Pos() uint32 {
	return d.Primary.Start
}
