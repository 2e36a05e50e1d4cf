package token

import "github.com/qtyi/luna-sub005/internal/syntax"

var keywords = map[string]syntax.Kind{
	"and":      syntax.AndKeyword,
	"break":    syntax.BreakKeyword,
	"do":       syntax.DoKeyword,
	"else":     syntax.ElseKeyword,
	"elseif":   syntax.ElseIfKeyword,
	"end":      syntax.EndKeyword,
	"false":    syntax.FalseKeyword,
	"for":      syntax.ForKeyword,
	"function": syntax.FunctionKeyword,
	"goto":     syntax.GotoKeyword,
	"if":       syntax.IfKeyword,
	"in":       syntax.InKeyword,
	"local":    syntax.LocalKeyword,
	"nil":      syntax.NilKeyword,
	"not":      syntax.NotKeyword,
	"or":       syntax.OrKeyword,
	"repeat":   syntax.RepeatKeyword,
	"return":   syntax.ReturnKeyword,
	"then":     syntax.ThenKeyword,
	"true":     syntax.TrueKeyword,
	"until":    syntax.UntilKeyword,
	"while":    syntax.WhileKeyword,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые: "End" и "END" остаются идентификаторами.
func LookupKeyword(ident string) (syntax.Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
