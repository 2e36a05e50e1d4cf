package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// CheckLossless verifies that the tree prints back to the file content byte
// for byte and that the root width matches the content length.
func CheckLossless(t *tree.Tree) error {
	if t == nil || t.Root == nil || t.File == nil {
		return fmt.Errorf("nil tree or file")
	}
	want := string(t.File.Content)
	got := tree.FullText(t.Root)
	if got != want {
		at := firstDiff(got, want)
		return fmt.Errorf("round-trip mismatch at byte %d: got %q, want %q",
			at, excerpt(got, at), excerpt(want, at))
	}
	n, err := safecast.Conv[uint32](len(want))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	if w := t.Root.FullWidth(); w != n {
		return fmt.Errorf("root width %d, content length %d", w, n)
	}
	return nil
}

// CheckCoverage walks every token and trivia piece (skipped tokens
// included) in source order and checks that their spans tile the file
// exactly: no gaps, no overlaps, the text of each piece matches the content
// under its span, and the last piece ends at EOF.
// Missing tokens must be zero-width and empty.
func CheckCoverage(t *tree.Tree) error {
	if t == nil || t.Root == nil || t.File == nil {
		return fmt.Errorf("nil tree or file")
	}
	c := coverage{file: t.File}
	for _, tok := range tree.Tokens(t.Root) {
		if err := c.token(tok); err != nil {
			return err
		}
	}
	end, err := safecast.Conv[uint32](len(t.File.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	if c.off != end {
		return fmt.Errorf("coverage ends at %d, file length %d", c.off, end)
	}
	if eof := t.EOF(); eof == nil || eof.Kind != syntax.EndOfFileToken {
		return fmt.Errorf("chunk does not end with EndOfFileToken")
	}
	return nil
}

type coverage struct {
	file *source.File
	off  uint32
}

func (c *coverage) token(tok *token.Token) error {
	for i := range tok.Leading {
		if err := c.trivia(&tok.Leading[i]); err != nil {
			return err
		}
	}
	if tok.Missing {
		if tok.Span.Len() != 0 || tok.Text != "" {
			return fmt.Errorf("missing %s has width %d and text %q", tok.Kind, tok.Span.Len(), tok.Text)
		}
	} else if err := c.piece(tok.Kind.String(), tok.Span, tok.Text); err != nil {
		return err
	}
	for i := range tok.Trailing {
		if err := c.trivia(&tok.Trailing[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c *coverage) trivia(tv *token.Trivia) error {
	if tv.Kind == token.TriviaSkippedTokens {
		for i := range tv.Skipped {
			if err := c.token(&tv.Skipped[i]); err != nil {
				return err
			}
		}
		return nil
	}
	return c.piece("trivia "+tv.Kind.String(), tv.Span, tv.Text)
}

func (c *coverage) piece(what string, sp source.Span, text string) error {
	switch {
	case sp.Start > c.off:
		return fmt.Errorf("gap [%d,%d) before %s", c.off, sp.Start, what)
	case sp.Start < c.off:
		return fmt.Errorf("%s at %d overlaps previous piece ending at %d", what, sp.Start, c.off)
	case sp.File != c.file.ID:
		return fmt.Errorf("%s span points to file %d, want %d", what, sp.File, c.file.ID)
	case int(sp.End) > len(c.file.Content):
		return fmt.Errorf("%s span %v beyond content", what, sp)
	}
	if got := string(c.file.Content[sp.Start:sp.End]); got != text {
		return fmt.Errorf("%s text %q does not match source %q", what, text, got)
	}
	c.off = sp.End
	return nil
}

func firstDiff(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func excerpt(s string, at int) string {
	end := min(at+16, len(s))
	return s[at:end]
}
