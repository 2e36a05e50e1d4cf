package parser

import (
	"fmt"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// parseDoStatement: 'do' Block 'end'.
func (p *Parser) parseDoStatement() *tree.Node {
	kw := p.advance()
	body := p.parseBlock(syntax.EndKeyword)
	end := p.expectClosing(syntax.EndKeyword, &kw)
	return tree.NewNode(syntax.DoStatement, tree.T(kw), tree.N(body), tree.T(end))
}

// parseWhileStatement: 'while' expr 'do' Block 'end'.
func (p *Parser) parseWhileStatement() *tree.Node {
	kw := p.advance()
	cond := p.parseExpression()
	do := p.expect(syntax.DoKeyword)
	body := p.parseBlock(syntax.EndKeyword)
	end := p.expectClosing(syntax.EndKeyword, &kw)
	return tree.NewNode(syntax.WhileStatement,
		tree.T(kw), tree.N(cond), tree.T(do), tree.N(body), tree.T(end))
}

// parseRepeatStatement: 'repeat' Block 'until' expr.
func (p *Parser) parseRepeatStatement() *tree.Node {
	kw := p.advance()
	body := p.parseBlock(syntax.UntilKeyword)
	until := p.expectClosing(syntax.UntilKeyword, &kw)
	cond := p.parseExpression()
	return tree.NewNode(syntax.RepeatStatement,
		tree.T(kw), tree.N(body), tree.T(until), tree.N(cond))
}

// parseIfStatement: 'if' expr 'then' Block {ElseIfClause} [ElseClause] 'end'.
func (p *Parser) parseIfStatement() *tree.Node {
	kw := p.advance()
	cond := p.parseExpression()
	then := p.expect(syntax.ThenKeyword)
	body := p.parseBlock(syntax.EndKeyword)
	children := []tree.Child{tree.T(kw), tree.N(cond), tree.T(then), tree.N(body)}

	for p.at(syntax.ElseIfKeyword) {
		ekw := p.advance()
		econd := p.parseExpression()
		ethen := p.expect(syntax.ThenKeyword)
		ebody := p.parseBlock(syntax.EndKeyword)
		children = append(children, tree.N(tree.NewNode(syntax.ElseIfClause,
			tree.T(ekw), tree.N(econd), tree.T(ethen), tree.N(ebody))))
	}
	if p.at(syntax.ElseKeyword) {
		ekw := p.advance()
		ebody := p.parseBlock(syntax.EndKeyword)
		children = append(children, tree.N(tree.NewNode(syntax.ElseClause, tree.T(ekw), tree.N(ebody))))
	}
	end := p.expectClosing(syntax.EndKeyword, &kw)
	children = append(children, tree.T(end))
	return tree.NewNode(syntax.IfStatement, children...)
}

// parseForStatement выбирает между числовым и общим for по токену после имени.
func (p *Parser) parseForStatement() *tree.Node {
	kw := p.advance()
	name := p.expectName()
	switch p.kind() {
	case syntax.EqualsToken:
		return p.parseNumericalFor(kw, name)
	case syntax.CommaToken, syntax.InKeyword:
		return p.parseGenericFor(kw, name)
	}
	p.errorExpected(diag.SynForBadHeader, "'=' or 'in' expected "+p.near()).Emit()
	return p.parseGenericFor(kw, name)
}

// parseNumericalFor: 'for' Name '=' e1 ',' e2 [',' e3] 'do' Block 'end'.
// Лишние выражения диагностируются и уходят в skipped trivia.
func (p *Parser) parseNumericalFor(kw, name token.Token) *tree.Node {
	eq := p.advance()
	children := []tree.Child{tree.T(kw), tree.T(name), tree.T(eq), tree.N(p.parseExpression())}

	if p.at(syntax.CommaToken) {
		children = append(children, tree.T(p.advance()), tree.N(p.parseExpression()))
	} else {
		p.errorExpected(diag.SynForBadHeader,
			fmt.Sprintf("',' expected %s", p.near())).
			WithNote(kw.Span, "numeric 'for' needs an initial value and a limit").
			Emit()
		limit := p.placeholder()
		if syntax.StartsExpression(p.kind()) {
			limit = p.parseExpression()
		}
		children = append(children, tree.T(p.missing(syntax.CommaToken)), tree.N(limit))
	}
	if p.at(syntax.CommaToken) {
		children = append(children, tree.T(p.advance()), tree.N(p.parseExpression()))
	}
	if p.at(syntax.CommaToken) {
		p.errorAt(diag.SynForBadHeader, p.errSpan(),
			"'do' expected "+p.near()).
			WithNote(kw.Span, "numeric 'for' takes at most three control expressions").
			Emit()
		for p.at(syntax.CommaToken) {
			p.skipSpeculative(func() {
				p.advance()
				p.parseExpression()
			})
		}
	}

	do := p.expect(syntax.DoKeyword)
	body := p.parseLoopBody()
	end := p.expectClosing(syntax.EndKeyword, &kw)
	children = append(children, tree.T(do), tree.N(body), tree.T(end))
	return tree.NewNode(syntax.NumericalForStatement, children...)
}

// parseGenericFor: 'for' NameList 'in' ExpressionList 'do' Block 'end'.
func (p *Parser) parseGenericFor(kw, first token.Token) *tree.Node {
	names := []*tree.Node{tree.NewNode(syntax.IdentifierName, tree.T(first))}
	var seps []token.Token
	for p.at(syntax.CommaToken) {
		seps = append(seps, p.advance())
		names = append(names, tree.NewNode(syntax.IdentifierName, tree.T(p.expectName())))
	}
	in := p.expect(syntax.InKeyword)
	var exprs *tree.Node
	if syntax.StartsExpression(p.kind()) || !in.Missing {
		exprs = p.parseExpressionList()
	} else {
		exprs = tree.NewNode(syntax.ExpressionList, tree.N(p.placeholder()))
	}
	do := p.expect(syntax.DoKeyword)
	body := p.parseLoopBody()
	end := p.expectClosing(syntax.EndKeyword, &kw)
	return tree.NewNode(syntax.GenericForStatement,
		tree.T(kw),
		tree.N(listNode(syntax.NameList, names, seps)),
		tree.T(in),
		tree.N(exprs),
		tree.T(do),
		tree.N(body),
		tree.T(end))
}

func (p *Parser) parseLoopBody() *tree.Node {
	return p.parseBlock(syntax.EndKeyword)
}

// skipSpeculative разбирает конструкцию с заглушёнными диагностиками,
// откатывается и пропускает ровно те токены, что она заняла.
func (p *Parser) skipSpeculative(parse func()) {
	m := p.mark()
	p.mute++
	parse()
	p.mute--
	end := p.pos
	p.reset(m)
	for p.pos < end {
		p.skip()
	}
}
