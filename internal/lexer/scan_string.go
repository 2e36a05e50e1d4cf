package lexer

import (
	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// scanString читает короткую строку в ' или " и декодирует escape-последовательности
// в байты. Неверный escape → диагностика, в значение кладём исходные байты escape.
// Перевод строки без '\' или EOF → "unfinished string", токен заканчивается перед ним.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	val := make([]byte, 0, 16)

	for {
		if lx.cursor.EOF() {
			return lx.unfinishedString(start, val, "<eof>")
		}
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			lx.cursor.Bump()
			tok := lx.makeToken(syntax.StringLiteralToken, start)
			tok.Value = token.BytesValue(val)
			return tok
		case b == '\n' || b == '\r':
			return lx.unfinishedString(start, val, "")
		case b == '\\':
			if lx.cursor.Off+1 >= lx.cursor.Limit {
				lx.cursor.Bump()
				return lx.unfinishedString(start, val, "<eof>")
			}
			val = lx.scanEscape(val)
		default:
			val = append(val, lx.cursor.Bump())
		}
	}
}

func (lx *Lexer) unfinishedString(start Mark, val []byte, near string) token.Token {
	tok := lx.makeToken(syntax.StringLiteralToken, start)
	tok.Value = token.BytesValue(val)
	if near == "" {
		near = tok.Text
	}
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unfinished string near '"+near+"'")
	return tok
}

// scanEscape consumes one escape sequence starting at '\' and appends its value.
func (lx *Lexer) scanEscape(val []byte) []byte {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	b := lx.cursor.Peek()

	if simple, ok := simpleEscapes[b]; ok {
		lx.cursor.Bump()
		return append(val, simple)
	}

	switch {
	case b == '\n' || b == '\r':
		lx.cursor.EatNewline()
		return append(val, '\n')

	case b == 'z':
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			c := lx.cursor.Peek()
			if isSpace(c) {
				lx.cursor.Bump()
				continue
			}
			if !lx.cursor.EatNewline() {
				break
			}
		}
		return val

	case b == 'x':
		lx.cursor.Bump()
		v := 0
		for range 2 {
			h := hexValue(lx.cursor.Peek())
			if h < 0 {
				return lx.badEscape(val, start, diag.LexInvalidEscape, "hexadecimal digit expected")
			}
			lx.cursor.Bump()
			v = v<<4 | h
		}
		return append(val, byte(v))

	case b == 'u':
		return lx.scanUnicodeEscape(val, start)

	case isDec(b):
		v := 0
		for i := 0; i < 3 && isDec(lx.cursor.Peek()); i++ {
			v = v*10 + int(lx.cursor.Bump()-'0')
		}
		if v > 0xFF {
			return lx.badEscape(val, start, diag.LexEscapeTooLarge, "decimal escape too large")
		}
		return append(val, byte(v))
	}

	if !lx.cursor.EOF() {
		lx.cursor.Bump()
	}
	return lx.badEscape(val, start, diag.LexInvalidEscape, "invalid escape sequence")
}

// scanUnicodeEscape handles \u{XXX}; values up to 2^31 are encoded with the
// extended (up to 6 byte) UTF-8 scheme Lua uses.
func (lx *Lexer) scanUnicodeEscape(val []byte, start Mark) []byte {
	lx.cursor.Bump() // 'u'
	if !lx.cursor.Eat('{') {
		return lx.badEscape(val, start, diag.LexMalformedUnicodeEscape, "missing '{' in \\u{xxxx}")
	}
	if hexValue(lx.cursor.Peek()) < 0 {
		return lx.badEscape(val, start, diag.LexMalformedUnicodeEscape, "hexadecimal digit expected")
	}
	var r uint64
	tooLarge := false
	for {
		h := hexValue(lx.cursor.Peek())
		if h < 0 {
			break
		}
		lx.cursor.Bump()
		r = r<<4 | uint64(h) // #nosec G115 -- h is 0..15
		if r > 0x7FFFFFFF {
			tooLarge = true
			r = 0x7FFFFFFF
		}
	}
	if tooLarge {
		for hexValue(lx.cursor.Peek()) >= 0 {
			lx.cursor.Bump()
		}
		lx.cursor.Eat('}')
		return lx.badEscape(val, start, diag.LexEscapeTooLarge, "UTF-8 value too large")
	}
	if !lx.cursor.Eat('}') {
		return lx.badEscape(val, start, diag.LexMalformedUnicodeEscape, "missing '}' in \\u{xxxx}")
	}
	return appendUTF8(val, uint32(r))
}

// badEscape reports the escape [start, cursor) and keeps its raw bytes in the value.
func (lx *Lexer) badEscape(val []byte, start Mark, code diag.Code, msg string) []byte {
	sp := lx.cursor.SpanFrom(start)
	raw := lx.text(sp)
	lx.errLex(code, sp, msg+" near '"+raw+"'")
	return append(val, raw...)
}

var simpleEscapes = map[byte]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// appendUTF8 encodes x like luaO_utf8esc: standard UTF-8 up to U+10FFFF and
// the original 5 and 6 byte forms above it. Surrogates are encoded as-is.
func appendUTF8(val []byte, x uint32) []byte {
	if x < 0x80 {
		return append(val, byte(x))
	}
	var buf [6]byte
	n := 0
	mfb := uint32(0x3f) // maximum that fits in the first byte
	for {
		buf[5-n] = byte(0x80 | (x & 0x3f))
		n++
		x >>= 6
		mfb >>= 1
		if x <= mfb {
			break
		}
	}
	buf[5-n] = byte((^mfb << 1) | x)
	n++
	return append(val, buf[6-n:]...)
}
