package lexer

import (
	"strconv"
	"strings"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// scanNumber следует read_numeral из эталонного Lua: жадно берём
// hex-цифры, '.', экспоненту со знаком, и ещё хвост из букв/цифр, если
// число "касается" имени (12abc): тогда весь хвост становится частью
// ошибочного токена.
// Поддержка: 3, 3.0, 3.1416, 314.16e-2, 0.31416E1, 34e1, 0xff, 0x0.1E,
// 0xA23p-4, 0X1.921FB54442D18P+1.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	expo1, expo2 := byte('e'), byte('E')
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Advance(2)
		expo1, expo2 = 'p', 'P'
	}
	for {
		b := lx.cursor.Peek()
		if b == expo1 || b == expo2 {
			lx.cursor.Bump()
			if s := lx.cursor.Peek(); s == '+' || s == '-' {
				lx.cursor.Bump()
			}
			continue
		}
		if isHex(b) || b == '.' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	tok := lx.makeToken(syntax.NumericLiteralToken, start)
	if len(tok.Text) > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, tok.Span, "numeral too long")
		return tok
	}
	if v, ok := ParseNumeral(tok.Text); ok {
		tok.Value = v
	} else {
		lx.errLex(diag.LexMalformedNumber, tok.Span, "malformed number near '"+tok.Text+"'")
	}
	return tok
}

// ParseNumeral decodes a Lua numeral. Integers that do not fit in int64
// wrap modulo 2^64; a '.' or an exponent always makes a float.
func ParseNumeral(s string) (token.Value, bool) {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return parseHexNumeral(s)
	}
	return parseDecNumeral(s)
}

func parseDecNumeral(s string) (token.Value, bool) {
	i := 0
	intDigits := 0
	for i < len(s) && isDec(s[i]) {
		i++
		intDigits++
	}
	isFloat := false
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		isFloat = true
		i++
		for i < len(s) && isDec(s[i]) {
			i++
			fracDigits++
		}
	}
	if intDigits+fracDigits == 0 {
		return token.Value{}, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		isFloat = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(s) && isDec(s[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return token.Value{}, false
		}
	}
	if i != len(s) {
		return token.Value{}, false
	}

	if !isFloat {
		var u uint64
		for j := 0; j < len(s); j++ {
			u = u*10 + uint64(s[j]-'0')
		}
		return token.IntValue(int64(u)), true // #nosec G115 -- wraps modulo 2^64 like Lua
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeErr(err) {
		return token.Value{}, false
	}
	return token.FloatValue(f), true
}

func parseHexNumeral(s string) (token.Value, bool) {
	body := s[2:]
	i := 0
	intDigits := 0
	for i < len(body) && isHex(body[i]) {
		i++
		intDigits++
	}
	isFloat := false
	fracDigits := 0
	if i < len(body) && body[i] == '.' {
		isFloat = true
		i++
		for i < len(body) && isHex(body[i]) {
			i++
			fracDigits++
		}
	}
	if intDigits+fracDigits == 0 {
		return token.Value{}, false
	}
	hasExp := false
	if i < len(body) && (body[i] == 'p' || body[i] == 'P') {
		isFloat, hasExp = true, true
		i++
		if i < len(body) && (body[i] == '+' || body[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(body) && isDec(body[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return token.Value{}, false
		}
	}
	if i != len(body) {
		return token.Value{}, false
	}

	if !isFloat {
		var u uint64
		for j := 0; j < len(body); j++ {
			u = u<<4 | uint64(hexValue(body[j])) // #nosec G115 -- hexValue is 0..15 here
		}
		return token.IntValue(int64(u)), true // #nosec G115 -- wraps modulo 2^64 like Lua
	}

	// strconv требует двоичную экспоненту у hex-float и хотя бы одну цифру до неё.
	lit := "0x" + body
	if !hasExp {
		lit += "p0"
	}
	f, err := strconv.ParseFloat(strings.ToLower(lit), 64)
	if err != nil && !isRangeErr(err) {
		return token.Value{}, false
	}
	return token.FloatValue(f), true
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}
