package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
)

// TriviaOutput is one trivia piece in JSON dumps.
type TriviaOutput struct {
	Kind    string        `json:"kind"`
	Text    string        `json:"text"`
	Span    source.Span   `json:"span"`
	Skipped []TokenOutput `json:"skipped,omitempty"`
}

type TokenOutput struct {
	Kind     string         `json:"kind"`
	Text     string         `json:"text,omitempty"`
	Span     source.Span    `json:"span"`
	Missing  bool           `json:"missing,omitempty"`
	Value    string         `json:"value,omitempty"`
	Leading  []TriviaOutput `json:"leading,omitempty"`
	Trailing []TriviaOutput `json:"trailing,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, opts TokenOpts) error {
	for i := range tokens {
		tok := &tokens[i]
		if opts.Trivia {
			writeTriviaPretty(w, tok.Leading, "lead")
		}

		fmt.Fprintf(w, "%3d: %-24s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if fs != nil && fs.Has(tok.Span.File) {
			startPos, endPos := fs.Resolve(tok.Span)
			fmt.Fprintf(w, " at %d:%d-%d:%d", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		}
		if opts.Values && !tok.Value.IsNone() {
			fmt.Fprintf(w, " = %s", tok.Value)
		}
		if !opts.Trivia && len(tok.Leading) > 0 {
			kinds := make([]string, 0, len(tok.Leading))
			for _, tv := range tok.Leading {
				kinds = append(kinds, tv.Kind.String())
			}
			fmt.Fprintf(w, " (leading: %s)", strings.Join(kinds, ", "))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		if opts.Trivia {
			writeTriviaPretty(w, tok.Trailing, "trail")
		}
		if tok.Kind == syntax.EndOfFileToken {
			break
		}
	}
	return nil
}

func writeTriviaPretty(w io.Writer, trivia []token.Trivia, side string) {
	for i := range trivia {
		fmt.Fprintf(w, "     [%s %s %q]\n", side, trivia[i].Kind, trivia[i].FullText())
	}
}

func tokenOutput(tok *token.Token, opts TokenOpts) TokenOutput {
	out := TokenOutput{
		Kind:    tok.Kind.String(),
		Text:    tok.Text,
		Span:    tok.Span,
		Missing: tok.Missing,
	}
	if opts.Values && !tok.Value.IsNone() {
		out.Value = tok.Value.String()
	}
	if opts.Trivia {
		out.Leading = triviaOutput(tok.Leading, opts)
		out.Trailing = triviaOutput(tok.Trailing, opts)
	}
	return out
}

func triviaOutput(trivia []token.Trivia, opts TokenOpts) []TriviaOutput {
	if len(trivia) == 0 {
		return nil
	}
	out := make([]TriviaOutput, 0, len(trivia))
	for i := range trivia {
		tv := &trivia[i]
		to := TriviaOutput{Kind: tv.Kind.String(), Text: tv.FullText(), Span: tv.Span}
		for j := range tv.Skipped {
			to.Skipped = append(to.Skipped, tokenOutput(&tv.Skipped[j], opts))
		}
		out = append(out, to)
	}
	return out
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, opts TokenOpts) error {
	output := make([]TokenOutput, 0, len(tokens))
	for i := range tokens {
		output = append(output, tokenOutput(&tokens[i], opts))
		if tokens[i].Kind == syntax.EndOfFileToken {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
