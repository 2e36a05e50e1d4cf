package lexer

import (
	"log/slog"

	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// Tokenize lexes the whole file. The result always ends with exactly one
// EndOfFileToken.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == syntax.EndOfFileToken {
			break
		}
	}
	opts.Logger.Debug("lexed file",
		slog.String("path", file.Path),
		slog.Int("bytes", len(file.Content)),
		slog.Int("tokens", len(toks)))
	return toks
}
