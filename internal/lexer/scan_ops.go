package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// "--" сюда не доходит: это комментарий, его забирает trivia.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k syntax.Kind) token.Token {
		return lx.makeToken(k, start)
	}

	switch {
	case lx.try3('.', '.', '.'):
		return emit(syntax.DotDotDotToken)
	case lx.try2('.', '.'):
		return emit(syntax.DotDotToken)
	case lx.try2(':', ':'):
		return emit(syntax.ColonColonToken)
	case lx.try2('=', '='):
		return emit(syntax.EqualsEqualsToken)
	case lx.try2('~', '='):
		return emit(syntax.TildeEqualsToken)
	case lx.try2('<', '='):
		return emit(syntax.LessThanEqualsToken)
	case lx.try2('>', '='):
		return emit(syntax.GreaterThanEqualsToken)
	case lx.try2('<', '<'):
		return emit(syntax.LessThanLessThanToken)
	case lx.try2('>', '>'):
		return emit(syntax.GreaterThanGreaterThanToken)
	case lx.try2('/', '/'):
		return emit(syntax.SlashSlashToken)
	}

	if lx.cursor.Peek() == '[' && lx.longBracketLevel() == invalidLongBracket {
		n := uint32(1)
		for lx.cursor.PeekAt(n) == '=' {
			n++
		}
		sp := lx.cursor.SpanFrom(start)
		sp.End += n
		lx.errLex(diag.LexInvalidLongBracket, sp, "invalid long string delimiter near '"+lx.text(sp)+"'")
	}

	// односимвольные
	ch := lx.cursor.Bump()
	if k, ok := singleCharTokens[ch]; ok {
		return emit(k)
	}

	// неизвестный символ: один байт или целая UTF-8 руна
	if ch >= utf8.RuneSelf {
		lx.cursor.Reset(start)
		_, sz := utf8.DecodeRuneInString(lx.src[lx.cursor.Off:])
		lx.cursor.Advance(uint32(sz)) // #nosec G115 -- sz <= 4
	}
	tok := emit(syntax.BadToken)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected symbol near '"+printable(tok.Text)+"'")
	return tok
}

var singleCharTokens = map[byte]syntax.Kind{
	'+': syntax.PlusToken,
	'-': syntax.MinusToken,
	'*': syntax.AsteriskToken,
	'/': syntax.SlashToken,
	'%': syntax.PercentToken,
	'^': syntax.CaretToken,
	'#': syntax.HashToken,
	'&': syntax.AmpersandToken,
	'~': syntax.TildeToken,
	'|': syntax.BarToken,
	'<': syntax.LessThanToken,
	'>': syntax.GreaterThanToken,
	'=': syntax.EqualsToken,
	'(': syntax.OpenParenToken,
	')': syntax.CloseParenToken,
	'{': syntax.OpenBraceToken,
	'}': syntax.CloseBraceToken,
	'[': syntax.OpenBracketToken,
	']': syntax.CloseBracketToken,
	';': syntax.SemicolonToken,
	':': syntax.ColonToken,
	',': syntax.CommaToken,
	'.': syntax.DotToken,
}

// printable renders control bytes as <\N> the way Lua's lexer error messages do.
func printable(s string) string {
	if len(s) == 1 && (s[0] < 0x20 || s[0] == 0x7f) {
		return "<\\" + strconv.Itoa(int(s[0])) + ">"
	}
	return s
}
