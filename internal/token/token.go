package token

import (
	"strings"

	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     syntax.Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
	Value    Value
	// Missing marks a zero-width token synthesized by the parser.
	Missing bool
}

// MissingToken builds a zero-width placeholder of kind k positioned at off.
func MissingToken(k syntax.Kind, file source.FileID, off uint32) Token {
	return Token{
		Kind:    k,
		Span:    source.Span{File: file, Start: off, End: off},
		Missing: true,
	}
}

// FullSpan covers leading trivia, the token text and trailing trivia.
func (t *Token) FullSpan() source.Span {
	sp := t.Span
	if n := len(t.Leading); n > 0 {
		sp = sp.Cover(t.Leading[0].Span)
	}
	if n := len(t.Trailing); n > 0 {
		sp = sp.Cover(t.Trailing[n-1].Span)
	}
	return sp
}

// WriteFullText appends leading trivia, text and trailing trivia to b.
func (t *Token) WriteFullText(b *strings.Builder) {
	for i := range t.Leading {
		t.Leading[i].WriteTo(b)
	}
	b.WriteString(t.Text)
	for i := range t.Trailing {
		t.Trailing[i].WriteTo(b)
	}
}

// FullText returns the token with all its trivia as it appears in the source.
func (t *Token) FullText() string {
	if len(t.Leading) == 0 && len(t.Trailing) == 0 {
		return t.Text
	}
	var b strings.Builder
	t.WriteFullText(&b)
	return b.String()
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool { return syntax.IsLiteralToken(t.Kind) }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return syntax.IsKeyword(t.Kind) }

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool { return syntax.IsPunctuation(t.Kind) }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == syntax.IdentifierToken }

// IsEOF reports the end-of-file token.
func (t Token) IsEOF() bool { return t.Kind == syntax.EndOfFileToken }

// HasSkipped reports whether leading trivia holds tokens dropped by recovery.
func (t *Token) HasSkipped() bool {
	for i := range t.Leading {
		if t.Leading[i].Kind == TriviaSkippedTokens {
			return true
		}
	}
	return false
}

// FullWidth is the byte length of FullText without building it.
func (t *Token) FullWidth() uint32 {
	w := t.Span.Len()
	for i := range t.Leading {
		w += t.Leading[i].FullWidth()
	}
	for i := range t.Trailing {
		w += t.Trailing[i].FullWidth()
	}
	return w
}
