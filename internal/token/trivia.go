package token

import (
	"strings"

	"github.com/qtyi/luna-sub005/internal/source"
)

type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	// TriviaEndOfLine is one line break: "\n", "\r", "\r\n" or "\n\r".
	TriviaEndOfLine
	TriviaLineComment
	TriviaBlockComment // --[==[ ... ]==], Level holds the '=' count
	TriviaShebang      // first line starting with '#', scripts only
	TriviaSkippedTokens
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaEndOfLine:
		return "EndOfLine"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaShebang:
		return "Shebang"
	case TriviaSkippedTokens:
		return "SkippedTokens"
	default:
		return "Unknown"
	}
}

type Trivia struct {
	Kind    TriviaKind
	Span    source.Span
	Text    string
	Level   int     // только для TriviaBlockComment
	Skipped []Token // только для TriviaSkippedTokens
}

// IsComment reports line and block comments.
func (tv Trivia) IsComment() bool {
	return tv.Kind == TriviaLineComment || tv.Kind == TriviaBlockComment
}

// WriteTo appends the exact source text of the trivia to b.
// Skipped-token trivia writes every owned token with its own trivia.
func (tv *Trivia) WriteTo(b *strings.Builder) {
	if tv.Kind != TriviaSkippedTokens {
		b.WriteString(tv.Text)
		return
	}
	for i := range tv.Skipped {
		tv.Skipped[i].WriteFullText(b)
	}
}

// FullText returns the source text covered by the trivia.
func (tv *Trivia) FullText() string {
	if tv.Kind != TriviaSkippedTokens {
		return tv.Text
	}
	var b strings.Builder
	tv.WriteTo(&b)
	return b.String()
}

// SkippedTrivia wraps stray tokens into a single trivia element.
func SkippedTrivia(toks []Token) Trivia {
	tv := Trivia{Kind: TriviaSkippedTokens, Skipped: toks}
	if len(toks) > 0 {
		tv.Span = toks[0].FullSpan().Cover(toks[len(toks)-1].FullSpan())
	}
	return tv
}

// FullWidth is the byte length of the trivia, owned tokens included.
func (tv *Trivia) FullWidth() uint32 {
	if tv.Kind != TriviaSkippedTokens {
		return tv.Span.Len()
	}
	var w uint32
	for i := range tv.Skipped {
		w += tv.Skipped[i].FullWidth()
	}
	return w
}
