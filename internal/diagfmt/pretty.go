package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	note, fix       *color.Color
	bold, gutter    *color.Color
	added, removed  *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:     mk(color.FgRed, color.Bold),
		warn:    mk(color.FgYellow, color.Bold),
		info:    mk(color.FgCyan, color.Bold),
		note:    mk(color.FgCyan),
		fix:     mk(color.FgGreen),
		bold:    mk(color.Bold),
		gutter:  mk(color.FgBlue),
		added:   mk(color.FgGreen),
		removed: mk(color.FgRed),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
// Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	PrettyDiagnostics(w, bag.Items(), fs, opts)
}

// PrettyDiagnostics is Pretty over a plain slice.
func PrettyDiagnostics(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i := range diags {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writePretty(w, &diags[i], fs, opts, pal)
	}
}

func writePretty(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity(d.Severity)
	if pos, ok := position(fs, d.Primary); ok {
		fmt.Fprintf(w, "%s:%d:%d: ", displayPath(fs, d.Primary.File, opts.PathMode), pos.Line, pos.Col)
	}
	fmt.Fprintf(w, "%s %s: %s\n", sev.Sprint(d.Severity.String()), pal.bold.Sprint(d.Code.ID()), d.Message)

	if fs != nil && fs.Has(d.Primary.File) {
		writeSnippet(w, fs.Get(d.Primary.File), d.Primary, opts, pal, sev)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			loc := ""
			if pos, ok := position(fs, n.Span); ok {
				loc = fmt.Sprintf("%s:%d:%d: ", displayPath(fs, n.Span.File, opts.PathMode), pos.Line, pos.Col)
			}
			fmt.Fprintf(w, "  %s %s%s\n", pal.note.Sprint("note:"), loc, n.Msg)
		}
	}

	if opts.ShowFixes {
		for i, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprintf("fix #%d:", i+1), fx.Title)
			for _, e := range fx.Edits {
				loc := "?"
				if pos, ok := position(fs, e.Span); ok {
					loc = fmt.Sprintf("%s:%d:%d", displayPath(fs, e.Span.File, opts.PathMode), pos.Line, pos.Col)
				}
				fmt.Fprintf(w, "    edit %s apply=%q\n", loc, e.NewText)
				if opts.ShowPreview {
					writePreview(w, fs, e, pal)
				}
			}
		}
	}
}

func writePreview(w io.Writer, fs *source.FileSet, e diag.FixEdit, pal palette) {
	preview, err := buildFixEditPreview(fs, e)
	if err != nil {
		return
	}
	fmt.Fprintln(w, "    preview:")
	for _, l := range preview.before {
		fmt.Fprintf(w, "      %s\n", pal.removed.Sprint("- "+l))
	}
	for _, l := range preview.after {
		fmt.Fprintf(w, "      %s\n", pal.added.Sprint("+ "+l))
	}
}

// writeSnippet печатает строку span'а с opts.Context строками вокруг и
// подчёркивание ^~~~ под первой строкой span'а.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, opts PrettyOpts, pal palette, mark *color.Color) {
	start := f.Position(sp.Start)
	end := f.Position(sp.End)
	lines := uint32(len(f.LineIdx)) + 1 // #nosec G115 -- line count fits, Add checked the length

	ctx := uint32(max(opts.Context, 0)) // #nosec G115 -- non-negative int8
	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := min(start.Line+ctx, lines)
	gw := len(strconv.FormatUint(uint64(last), 10))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gw, ln), clip(text, opts.Width))
		if ln != start.Line {
			continue
		}
		colEnd := len(text)
		if end.Line == start.Line {
			colEnd = int(end.Col) - 1
		}
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*s |", gw, ""),
			mark.Sprint(clip(underline(text, int(start.Col)-1, colEnd), opts.Width)))
	}
}

// underline строит отступ и ^~~~ для байтового диапазона [from, to) строки.
// Табы в отступе сохраняются, ширина символов: по runewidth.
func underline(line string, from, to int) string {
	from = min(max(from, 0), len(line))
	to = min(max(to, from), len(line))

	var b strings.Builder
	for _, r := range line[:from] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := max(runewidth.StringWidth(line[from:to]), 1)
	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", width-1))
	return b.String()
}

func clip(s string, width uint8) string {
	if width == 0 {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}
