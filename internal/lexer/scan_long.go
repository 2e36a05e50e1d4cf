package lexer

import (
	"fmt"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

const (
	notLongBracket     = -1 // одиночная '['
	invalidLongBracket = -2 // "[=" без второй '['
)

// longBracketLevel inspects "[=*[" at the cursor without consuming it and
// returns the number of '=' signs, notLongBracket or invalidLongBracket.
func (lx *Lexer) longBracketLevel() int {
	if lx.cursor.Peek() != '[' {
		return notLongBracket
	}
	var n uint32 = 1
	for lx.cursor.PeekAt(n) == '=' {
		n++
	}
	if lx.cursor.PeekAt(n) == '[' {
		return int(n - 1)
	}
	if n > 1 {
		return invalidLongBracket
	}
	return notLongBracket
}

// skipLongBracket consumes "[=*[ ... ]=*]" of the given level. A line break
// right after the opener is consumed but reported as outside the body.
// On EOF the body runs to the end of the file and closed is false.
func (lx *Lexer) skipLongBracket(level int) (bodyStart, bodyEnd uint32, closed bool) {
	delim := uint32(level) + 2 // #nosec G115 -- level counts bytes of a uint32-sized file
	lx.cursor.Advance(delim)
	lx.cursor.EatNewline()
	bodyStart = lx.cursor.Off

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == ']' && lx.closesAt(level) {
			bodyEnd = lx.cursor.Off
			lx.cursor.Advance(delim)
			return bodyStart, bodyEnd, true
		}
		lx.cursor.Bump()
	}
	return bodyStart, lx.cursor.Off, false
}

// closesAt reports whether "]=*]" with exactly level '=' starts at the cursor.
func (lx *Lexer) closesAt(level int) bool {
	var i uint32 = 1
	for ; lx.cursor.PeekAt(i) == '='; i++ {
	}
	return int(i-1) == level && lx.cursor.PeekAt(i) == ']'
}

func (lx *Lexer) scanLongString() token.Token {
	start := lx.cursor.Mark()
	level := lx.longBracketLevel()
	bodyStart, bodyEnd, closed := lx.skipLongBracket(level)

	tok := lx.makeToken(syntax.LongStringLiteralToken, start)
	if !closed {
		line := lx.file.Position(uint32(start)).Line
		lx.errLex(diag.LexUnterminatedLongString, tok.Span,
			fmt.Sprintf("unfinished long string (starting at line %d) near '<eof>'", line))
	}
	tok.Value = token.BytesValue(normalizeNewlines(lx.src[bodyStart:bodyEnd]))
	return tok
}

// normalizeNewlines turns every line break sequence into a single '\n', as
// Lua does for the value of a long string.
func normalizeNewlines(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '\n' && b != '\r' {
			out = append(out, b)
			continue
		}
		out = append(out, '\n')
		if i+1 < len(s) && (s[i+1] == '\n' || s[i+1] == '\r') && s[i+1] != b {
			i++
		}
	}
	return out
}
