package fuzztests

import (
	"testing"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/lexer"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// FuzzLexerTokens checks that the token stream (trivia included) reproduces
// the input and always ends with a single EOF.
func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.lua", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

		var out []byte
		for i := range toks {
			out = append(out, toks[i].FullText()...)
			if toks[i].Kind == syntax.EndOfFileToken && i != len(toks)-1 {
				t.Fatalf("EOF at index %d of %d", i, len(toks))
			}
		}
		if string(out) != string(file.Content) {
			t.Fatalf("token stream does not reproduce input %q", input)
		}
	})
}
