package parser

import (
	"fmt"
	"log/slog"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/lexer"
	"github.com/qtyi/luna-sub005/internal/observ"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// maxSyntaxDepth ограничивает вложенность блоков и выражений (LUAI_MAXCCALLS).
const maxSyntaxDepth = 200

type Options struct {
	Kind lexer.SourceKind
	// MaxErrors caps parser errors; 0 means unlimited. Lexer diagnostics are
	// capped by the bag only.
	MaxErrors uint
	// Reporter additionally receives every diagnostic as it is produced.
	Reporter diag.Reporter
	Logger   *observ.Logger
}

type Result struct {
	Tree *tree.Tree
	// Diagnostics are sorted by position.
	Diagnostics []diag.Diagnostic
}

// HasErrors reports whether any diagnostic is an error.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// Parser: состояние парсера на один файл
type Parser struct {
	file    *source.File
	toks    []token.Token // весь поток, последний: EOF
	pos     int
	skipped []token.Token // пропущенные токены, ждущие следующего съеденного
	last    source.Span   // span последнего съеденного токена
	opts    Options
	rep     diag.Reporter

	errors  uint
	errPos  int // позиция последней "expected" ошибки
	mute    int
	depth   int
	aborted bool // после SynTooDeep

	// varargs[len-1]: допускает ли текущая функция '...'
	varargs []bool
}

// Parse lexes and parses one file. It never fails: the returned tree always
// reproduces file.Content exactly, and problems are reported as diagnostics.
func Parse(file *source.File, opts Options) (res Result) {
	bag := diag.NewBag(0)
	var rep diag.Reporter = diag.BagReporter{Bag: bag}
	if opts.Reporter != nil {
		rep = diag.MultiReporter{rep, opts.Reporter}
	}
	// одинаковые (code, severity, span, message) уходят в bag один раз
	rep = diag.NewDedupReporter(rep)

	toks := lexer.Tokenize(file, lexer.Options{
		Reporter: rep,
		Kind:     opts.Kind,
		Logger:   opts.Logger,
	})

	p := &Parser{
		file:    file,
		toks:    toks,
		last:    source.Span{File: file.ID},
		opts:    opts,
		rep:     rep,
		errPos:  -1,
		varargs: []bool{true}, // главный chunk: vararg-функция
	}

	defer func() {
		if r := recover(); r != nil {
			diag.NewReportBuilder(rep, diag.SevError, diag.IntParserPanic,
				source.Span{File: file.ID}, fmt.Sprintf("internal parser error: %v", r)).Emit()
			res = p.result(badChunk(toks), bag)
		}
	}()

	root := p.parseChunk()
	return p.result(root, bag)
}

func (p *Parser) result(root *tree.Node, bag *diag.Bag) Result {
	bag.Sort()
	res := Result{
		Tree:        &tree.Tree{File: p.file, Root: root},
		Diagnostics: bag.Snapshot(),
	}
	p.opts.Logger.Debug("parsed file",
		slog.String("path", p.file.Path),
		slog.Int("tokens", len(p.toks)),
		slog.Int("diagnostics", len(res.Diagnostics)))
	return res
}

// parseChunk: Chunk = [Block, EOF].
func (p *Parser) parseChunk() *tree.Node {
	block := p.parseBlock(syntax.EndOfFileToken)
	eof := p.advance()
	return tree.NewNode(syntax.Chunk, tree.N(block), tree.T(eof))
}

// badChunk на крайний случай кладёт все токены в один BadStatement.
func badChunk(toks []token.Token) *tree.Node {
	n := len(toks) - 1
	children := make([]tree.Child, 0, n)
	for _, t := range toks[:n] {
		children = append(children, tree.T(t))
	}
	var stmts []tree.Child
	if n > 0 {
		stmts = append(stmts, tree.N(tree.NewNode(syntax.BadStatement, children...)))
	}
	return tree.NewNode(syntax.Chunk,
		tree.N(tree.NewNode(syntax.Block, stmts...)),
		tree.T(toks[n]))
}
