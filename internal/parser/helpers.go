package parser

import (
	"fmt"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// cur: текущий (ещё не съеденный) токен
func (p *Parser) cur() *token.Token {
	return &p.toks[p.pos]
}

func (p *Parser) kind() syntax.Kind {
	return p.toks[p.pos].Kind
}

// peekKind смотрит на n токенов вперёд; за EOF не выходит.
func (p *Parser) peekKind(n int) syntax.Kind {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i].Kind
}

func (p *Parser) at(k syntax.Kind) bool {
	return p.kind() == k
}

// advance съедает текущий токен. Накопленные пропущенные токены
// становятся SkippedTokens trivia перед его Leading.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != syntax.EndOfFileToken {
		p.pos++
	}
	if len(p.skipped) > 0 {
		lead := make([]token.Trivia, 0, len(tok.Leading)+1)
		lead = append(lead, token.SkippedTrivia(p.skipped))
		tok.Leading = append(lead, tok.Leading...)
		p.skipped = nil
	}
	p.last = tok.Span
	return tok
}

// skip убирает текущий токен в пропущенные. EOF не пропускается.
func (p *Parser) skip() {
	if p.at(syntax.EndOfFileToken) {
		return
	}
	p.skipped = append(p.skipped, p.toks[p.pos])
	p.pos++
}

// skipUntil пропускает токены до первого, для которого stop == true.
func (p *Parser) skipUntil(stop func(syntax.Kind) bool) {
	for !p.at(syntax.EndOfFileToken) && !stop(p.kind()) {
		p.skip()
	}
}

type mark struct {
	pos     int
	skipped []token.Token
	last    source.Span
}

func (p *Parser) mark() mark {
	return mark{pos: p.pos, skipped: p.skipped, last: p.last}
}

// reset откатывает курсор. Диагностики, выданные после mark, не отзываются.
func (p *Parser) reset(m mark) {
	p.pos = m.pos
	p.skipped = m.skipped
	p.last = m.last
}

// missing builds a zero-width token right after the last consumed one.
func (p *Parser) missing(k syntax.Kind) token.Token {
	return token.MissingToken(k, p.file.ID, p.last.End)
}

// placeholder stands in for an expression that is not there.
func (p *Parser) placeholder() *tree.Node {
	return tree.NewNode(syntax.IdentifierName, tree.T(p.missing(syntax.IdentifierToken)))
}

// near renders the current token the way Lua messages do: near 'x' / near <eof>.
func (p *Parser) near() string {
	tok := p.cur()
	if tok.Kind == syntax.EndOfFileToken {
		return "near <eof>"
	}
	text := tok.Text
	if len(text) > 40 {
		text = text[:37] + "..."
	}
	return "near '" + text + "'"
}

// errSpan: span текущего токена; для EOF пустой span в его позиции.
func (p *Parser) errSpan() source.Span {
	return p.cur().Span
}

// errorAt starts a diagnostic. It returns nil (and nothing is emitted) when
// reporting is muted or the error limit is reached; ReportBuilder is nil-safe.
func (p *Parser) errorAt(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	if p.mute > 0 || p.aborted {
		return nil
	}
	if p.opts.MaxErrors != 0 && p.errors >= p.opts.MaxErrors {
		return nil
	}
	p.errors++
	return diag.ReportError(p.rep, code, sp, msg)
}

// infoAt is errorAt for follow-up diagnostics: they do not count towards
// MaxErrors.
func (p *Parser) infoAt(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	if p.mute > 0 || p.aborted {
		return nil
	}
	return diag.NewReportBuilder(p.rep, diag.SevInfo, code, sp, msg)
}

// errorExpected reports at the current token, at most once per token position.
// A BadToken was already reported by the lexer and gets no syntax error.
func (p *Parser) errorExpected(code diag.Code, msg string) *diag.ReportBuilder {
	if p.errPos == p.pos {
		return nil
	}
	if p.at(syntax.BadToken) {
		p.errPos = p.pos
		return nil
	}
	b := p.errorAt(code, p.errSpan(), msg)
	if b != nil {
		p.errPos = p.pos
	}
	return b
}

// expect съедает токен kind или возвращает missing-токен с диагностикой.
func (p *Parser) expect(k syntax.Kind) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.errorExpected(diag.SynExpectToken, fmt.Sprintf("%s expected %s", syntax.Describe(k), p.near())).Emit()
	return p.missing(k)
}

// expectClosing: как expect, но для закрывающего токена конструкции,
// открытой токеном opener: добавляет note и fix со вставкой.
func (p *Parser) expectClosing(k syntax.Kind, opener *token.Token) token.Token {
	if p.at(k) {
		return p.advance()
	}
	what := syntax.Describe(k)
	openLine := p.file.Position(opener.Span.Start).Line
	msg := fmt.Sprintf("%s expected %s", what, p.near())
	if curLine := p.file.Position(p.errSpan().Start).Line; curLine != openLine {
		msg = fmt.Sprintf("%s expected (to close %s at line %d) %s", what, syntax.Describe(opener.Kind), openLine, p.near())
	}
	tok := p.missing(k)
	b := p.errorExpected(diag.SynUnclosedDelimiter, msg)
	if b == nil && p.errPos == p.pos {
		// Ошибка на этой позиции уже есть (обычно у вложенной конструкции).
		// Внешней достаточно info на opener, но со своим fix.
		b = p.infoAt(diag.SynUnclosedDelimiter, opener.Span,
			fmt.Sprintf("%s expected (to close %s at line %d) %s", what, syntax.Describe(opener.Kind), openLine, p.near()))
	}
	b.WithNote(opener.Span, fmt.Sprintf("to close %s at line %d", syntax.Describe(opener.Kind), openLine)).
		WithFix("insert "+what, diag.InsertText(p.file.ID, tok.Span.Start, " "+syntax.Text(k))).
		Emit()
	return tok
}

// expectName: Name или missing IdentifierToken.
func (p *Parser) expectName() token.Token {
	if p.at(syntax.IdentifierToken) {
		return p.advance()
	}
	p.errorExpected(diag.SynExpectIdentifier, "<name> expected "+p.near()).Emit()
	return p.missing(syntax.IdentifierToken)
}

func (p *Parser) accept(k syntax.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// enter увеличивает глубину вложенности. При превышении maxSyntaxDepth
// разбор прерывается: остаток файла уходит в skipped trivia, а все
// незакрытые конструкции получают missing-токены без новых диагностик.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth <= maxSyntaxDepth && !p.aborted {
		return true
	}
	if !p.aborted {
		p.errorAt(diag.SynTooDeep, p.errSpan(),
			fmt.Sprintf("chunk has too many syntax levels (limit is %d) %s", maxSyntaxDepth, p.near())).Emit()
		p.aborted = true
		p.skipUntil(func(syntax.Kind) bool { return false })
	}
	return false
}

func (p *Parser) leave() {
	p.depth--
}

// listNode собирает список вида [item, sep, item, ...].
func listNode(kind syntax.Kind, items []*tree.Node, seps []token.Token) *tree.Node {
	children := make([]tree.Child, 0, len(items)+len(seps))
	for i, it := range items {
		children = append(children, tree.N(it))
		if i < len(seps) {
			children = append(children, tree.T(seps[i]))
		}
	}
	return tree.NewNode(kind, children...)
}
