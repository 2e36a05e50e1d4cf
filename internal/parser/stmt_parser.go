package parser

import (
	"fmt"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// parseBlock разбирает операторы до терминатора блока. closer: токен,
// которым блок должен закончиться; для главного chunk это EOF, и тогда
// лишние end/else/elseif/until пропускаются с диагностикой.
func (p *Parser) parseBlock(closer syntax.Kind) *tree.Node {
	ok := p.enter()
	defer p.leave()
	if !ok {
		return tree.NewNode(syntax.Block)
	}

	var stmts []tree.Child
	returned := false
	for {
		k := p.kind()
		if syntax.IsBlockEnd(k) {
			if k == syntax.EndOfFileToken || closer != syntax.EndOfFileToken {
				break
			}
			p.errorAt(diag.SynStrayTerminator, p.errSpan(),
				fmt.Sprintf("%s expected %s", describeCloser(closer), p.near())).Emit()
			p.skip()
			continue
		}
		if returned {
			p.errorAt(diag.SynReturnNotLast, p.errSpan(),
				fmt.Sprintf("%s expected %s", describeCloser(closer), p.near())).
				WithNote(p.last, "'return' must be the last statement of a block").
				Emit()
			returned = false
		}

		start := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, tree.N(stmt))
			if stmt.Kind() == syntax.ReturnStatement {
				returned = true
			}
		}
		if p.pos == start && !p.at(syntax.EndOfFileToken) {
			p.noProgress(&stmts)
		}
	}
	return tree.NewNode(syntax.Block, stmts...)
}

// describeCloser: как syntax.Describe, но EOF в кавычках, как пишет Lua.
func describeCloser(k syntax.Kind) string {
	if k == syntax.EndOfFileToken {
		return "'<eof>'"
	}
	return syntax.Describe(k)
}

// noProgress страхует от зацикливания: текущий токен становится
// BadStatement, и фиксируется дефект парсера.
func (p *Parser) noProgress(stmts *[]tree.Child) {
	diag.NewReportBuilder(p.rep, diag.SevError, diag.IntNoProgress, p.errSpan(),
		fmt.Sprintf("parser made no progress %s", p.near())).Emit()
	tok := p.advance()
	*stmts = append(*stmts, tree.N(tree.NewNode(syntax.BadStatement, tree.T(tok))))
}

// parseStatement выбирает распознаватель по первому токену. Возвращает nil,
// если токены были только пропущены.
func (p *Parser) parseStatement() *tree.Node {
	switch p.kind() {
	case syntax.SemicolonToken:
		return tree.NewNode(syntax.EmptyStatement, tree.T(p.advance()))
	case syntax.IfKeyword:
		return p.parseIfStatement()
	case syntax.WhileKeyword:
		return p.parseWhileStatement()
	case syntax.DoKeyword:
		return p.parseDoStatement()
	case syntax.ForKeyword:
		return p.parseForStatement()
	case syntax.RepeatKeyword:
		return p.parseRepeatStatement()
	case syntax.FunctionKeyword:
		return p.parseFunctionStatement()
	case syntax.LocalKeyword:
		if p.peekKind(1) == syntax.FunctionKeyword {
			return p.parseLocalFunctionStatement()
		}
		return p.parseLocalDeclaration()
	case syntax.ColonColonToken:
		return p.parseLabelStatement()
	case syntax.ReturnKeyword:
		return p.parseReturnStatement()
	case syntax.BreakKeyword:
		return tree.NewNode(syntax.BreakStatement, tree.T(p.advance()))
	case syntax.GotoKeyword:
		kw := p.advance()
		name := p.expectName()
		return tree.NewNode(syntax.GotoStatement, tree.T(kw), tree.T(name))
	case syntax.IdentifierToken, syntax.OpenParenToken:
		return p.parseExpressionStatement()
	}

	if !p.at(syntax.BadToken) {
		p.errorAt(diag.SynExpectStatement, p.errSpan(), "unexpected symbol "+p.near()).Emit()
	}
	p.skip()
	p.skipUntil(func(k syntax.Kind) bool {
		return syntax.StartsStatement(k) || syntax.IsBlockEnd(k)
	})
	return nil
}

// parseExpressionStatement: вызов функции или присваивание.
func (p *Parser) parseExpressionStatement() *tree.Node {
	first := p.parseSuffixedExpression()
	if !p.at(syntax.EqualsToken) && !p.at(syntax.CommaToken) {
		if first.Kind() != syntax.InvocationExpression {
			p.errorExpected(diag.SynExpectCall, "syntax error "+p.near()).
				WithNote(first.Span(), "expression statement must be a function call").
				Emit()
		}
		return tree.NewNode(syntax.ExpressionStatement, tree.N(first))
	}

	targets := []*tree.Node{first}
	var seps []token.Token
	for p.at(syntax.CommaToken) {
		seps = append(seps, p.advance())
		targets = append(targets, p.parseSuffixedExpression())
	}
	for _, t := range targets {
		if !syntax.IsAssignable(t.Kind()) && !t.HasMissing() {
			p.errorAt(diag.SynInvalidAssignmentTarget, t.Span(), "syntax error: cannot assign to this expression").Emit()
		}
	}
	eq := p.expect(syntax.EqualsToken)
	values := p.parseExpressionList()
	return tree.NewNode(syntax.AssignmentStatement,
		tree.N(listNode(syntax.ExpressionList, targets, seps)),
		tree.T(eq),
		tree.N(values))
}

// parseReturnStatement: 'return' [explist] [';'].
func (p *Parser) parseReturnStatement() *tree.Node {
	kw := p.advance()
	children := []tree.Child{tree.T(kw)}
	if !syntax.IsBlockEnd(p.kind()) && !p.at(syntax.SemicolonToken) {
		children = append(children, tree.N(p.parseExpressionList()))
	}
	if semi, ok := p.accept(syntax.SemicolonToken); ok {
		children = append(children, tree.T(semi))
	}
	return tree.NewNode(syntax.ReturnStatement, children...)
}

// parseLabelStatement: '::' Name '::'.
func (p *Parser) parseLabelStatement() *tree.Node {
	open := p.advance()
	name := p.expectName()
	closeTok := p.expect(syntax.ColonColonToken)
	return tree.NewNode(syntax.LabelStatement, tree.T(open), tree.T(name), tree.T(closeTok))
}
