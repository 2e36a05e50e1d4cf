package lexer

import (
	"fmt"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\v', '\f' коалесцируются в один TriviaWhitespace
//   - каждый перевод строки ("\n", "\r", "\r\n", "\n\r"): отдельный TriviaEndOfLine
//   - --... до конца строки -> TriviaLineComment
//   - --[==[ ... ]==] -> TriviaBlockComment с Level (если не закрыт: репорт и обрезаем на EOF)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		tv, ok := lx.scanTrivia()
		if !ok {
			break
		}
		lx.hold = append(lx.hold, tv)
	}
}

// collectTrailingTrivia забирает trivia после токена до первого перевода строки включительно.
func (lx *Lexer) collectTrailingTrivia() []token.Trivia {
	var out []token.Trivia
	for !lx.cursor.EOF() {
		tv, ok := lx.scanTrivia()
		if !ok {
			break
		}
		out = append(out, tv)
		if tv.Kind == token.TriviaEndOfLine {
			break
		}
	}
	return out
}

func (lx *Lexer) scanTrivia() (token.Trivia, bool) {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	switch {
	case isSpace(b):
		for isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.trivia(token.TriviaWhitespace, start, 0), true

	case b == '\n' || b == '\r':
		lx.cursor.EatNewline()
		return lx.trivia(token.TriviaEndOfLine, start, 0), true

	case b == '-' && lx.cursor.PeekAt(1) == '-':
		return lx.scanComment(), true
	}
	return token.Trivia{}, false
}

func (lx *Lexer) scanComment() token.Trivia {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2) // "--"

	if lx.cursor.Peek() == '[' {
		if level := lx.longBracketLevel(); level >= 0 {
			opener := lx.cursor.Off
			_, _, closed := lx.skipLongBracket(level)
			if !closed {
				line := lx.file.Position(opener).Line
				lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start),
					fmt.Sprintf("unfinished long comment (starting at line %d) near '<eof>'", line))
			}
			return lx.trivia(token.TriviaBlockComment, start, level)
		}
	}

	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.trivia(token.TriviaLineComment, start, 0)
}

func (lx *Lexer) trivia(kind token.TriviaKind, start Mark, level int) token.Trivia {
	sp := lx.cursor.SpanFrom(start)
	return token.Trivia{
		Kind:  kind,
		Span:  sp,
		Text:  lx.text(sp),
		Level: level,
	}
}
