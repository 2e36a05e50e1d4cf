package lexer

import (
	"log/slog"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// maxTokenLength bounds names and numerals; longer ones are reported.
const maxTokenLength = 1 << 16

type Lexer struct {
	file    *source.File
	src     string // единственная string-копия Content; Token.Text: её подстроки
	cursor  Cursor
	opts    Options
	look    *token.Token   // 1 элементный буфер для токена
	hold    []token.Trivia // накопленные leading trivia
	started bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		src:    string(file.Content),
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий **значимый** токен с уже собранными Leading и Trailing.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if !lx.started {
		lx.started = true
		lx.scanShebang()
	}

	lx.collectLeadingTrivia()

	// Хвостовые пустые строки и комментарии файла висят на EOF как Leading.
	if lx.cursor.EOF() {
		tok := token.Token{
			Kind:    syntax.EndOfFileToken,
			Span:    lx.emptySpan(),
			Leading: lx.takeHold(),
		}
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	case ch == '[' && lx.longBracketLevel() >= 0:
		tok = lx.scanLongString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.takeHold()
	tok.Trailing = lx.collectTrailingTrivia()
	if lx.opts.Logger.TraceEnabled() {
		lx.opts.Logger.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.Any("start", tok.Span.Start),
			slog.String("text", tok.Text))
	}
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return lx.src[sp.Start:sp.End]
}

func (lx *Lexer) makeToken(k syntax.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
}

// scanShebang keeps a first line starting with '#' as TriviaShebang.
// Fragments only accept it after reporting, and only in the "#!" form.
func (lx *Lexer) scanShebang() {
	if lx.cursor.Peek() != '#' {
		return
	}
	if lx.opts.Kind == SourceFragment && lx.cursor.PeekAt(1) != '!' {
		return
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if lx.opts.Kind == SourceFragment {
		lx.errLex(diag.LexShebangNotAllowed, sp, "shebang line is only allowed at the start of a script")
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaShebang,
		Span: sp,
		Text: lx.text(sp),
	})
}
