package lexer

import (
	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// scanIdentOrKeyword сканирует имя и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только lowercase). Token.Text: ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	tok := lx.makeToken(syntax.IdentifierToken, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
		return tok
	}
	if len(tok.Text) > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, tok.Span, "name too long")
	}
	return tok
}
