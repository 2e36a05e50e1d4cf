package parser

import (
	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// parseExpression: полное выражение.
func (p *Parser) parseExpression() *tree.Node {
	return p.parseSubExpression(0)
}

// parseSubExpression разбирает выражение, в котором все бинарные операторы
// имеют левый приоритет выше limit (алгоритм subexpr из lparser.c).
func (p *Parser) parseSubExpression(limit int) *tree.Node {
	ok := p.enter()
	defer p.leave()
	if !ok {
		return p.placeholder()
	}

	var left *tree.Node
	if uop := unaryOp(p.kind()); uop != syntax.None {
		op := p.advance()
		operand := p.parseSubExpression(precUnary)
		left = tree.NewNode(uop, tree.T(op), tree.N(operand))
	} else {
		left = p.parseSimpleExpression()
	}

	for {
		op, ok := binaryOp(p.kind())
		if !ok || op.left <= limit {
			break
		}
		opTok := p.advance()
		right := p.parseSubExpression(op.right)
		left = tree.NewNode(op.node, tree.N(left), tree.T(opTok), tree.N(right))
	}
	return left
}

// parseSimpleExpression: литералы, '...', конструктор таблицы, function
// или suffixedexp.
func (p *Parser) parseSimpleExpression() *tree.Node {
	switch p.kind() {
	case syntax.NilKeyword:
		return tree.NewNode(syntax.NilLiteralExpression, tree.T(p.advance()))
	case syntax.TrueKeyword:
		return tree.NewNode(syntax.TrueLiteralExpression, tree.T(p.advance()))
	case syntax.FalseKeyword:
		return tree.NewNode(syntax.FalseLiteralExpression, tree.T(p.advance()))
	case syntax.NumericLiteralToken:
		return tree.NewNode(syntax.NumericLiteralExpression, tree.T(p.advance()))
	case syntax.StringLiteralToken, syntax.LongStringLiteralToken:
		return tree.NewNode(syntax.StringLiteralExpression, tree.T(p.advance()))
	case syntax.DotDotDotToken:
		return p.parseVararg()
	case syntax.OpenBraceToken:
		return p.parseTableConstructor()
	case syntax.FunctionKeyword:
		kw := p.advance()
		body := p.parseFunctionBody(&kw)
		return tree.NewNode(syntax.FunctionDefinitionExpression, tree.T(kw), tree.N(body))
	}
	return p.parseSuffixedExpression()
}

func (p *Parser) parseVararg() *tree.Node {
	tok := p.advance()
	if !p.varargs[len(p.varargs)-1] {
		p.errorAt(diag.SynVarargOutsideFunction, tok.Span,
			"cannot use '...' outside a vararg function near '...'").Emit()
	}
	return tree.NewNode(syntax.VarargExpression, tree.T(tok))
}

// parsePrimaryExpression: Name или '(' expr ')'. Иначе заглушка.
func (p *Parser) parsePrimaryExpression() *tree.Node {
	switch p.kind() {
	case syntax.IdentifierToken:
		return tree.NewNode(syntax.IdentifierName, tree.T(p.advance()))
	case syntax.OpenParenToken:
		open := p.advance()
		inner := p.parseExpression()
		closeTok := p.expectClosing(syntax.CloseParenToken, &open)
		return tree.NewNode(syntax.ParenthesizedExpression, tree.T(open), tree.N(inner), tree.T(closeTok))
	}
	p.errorExpected(diag.SynExpectExpression, "unexpected symbol "+p.near()).Emit()
	return p.placeholder()
}

// parseSuffixedExpression: primaryexp { '.' Name | '[' exp ']' | ':' Name args | args }.
// '(' на новой строке продолжает выражение, как в PUC-Lua.
func (p *Parser) parseSuffixedExpression() *tree.Node {
	expr := p.parsePrimaryExpression()
	for {
		switch p.kind() {
		case syntax.DotToken:
			dot := p.advance()
			name := p.expectName()
			expr = tree.NewNode(syntax.MemberAccessExpression, tree.N(expr), tree.T(dot), tree.T(name))
		case syntax.OpenBracketToken:
			open := p.advance()
			key := p.parseExpression()
			closeTok := p.expectClosing(syntax.CloseBracketToken, &open)
			expr = tree.NewNode(syntax.ElementAccessExpression,
				tree.N(expr), tree.T(open), tree.N(key), tree.T(closeTok))
		case syntax.ColonToken:
			colon := p.advance()
			name := p.expectName()
			self := tree.NewNode(syntax.ImplicitSelfParameterExpression, tree.N(expr), tree.T(colon), tree.T(name))
			expr = tree.NewNode(syntax.InvocationExpression, tree.N(self), tree.N(p.parseArguments()))
		case syntax.OpenParenToken, syntax.StringLiteralToken, syntax.LongStringLiteralToken, syntax.OpenBraceToken:
			expr = tree.NewNode(syntax.InvocationExpression, tree.N(expr), tree.N(p.parseArguments()))
		default:
			return expr
		}
	}
}

// parseArguments: ArgumentList, StringArgument или TableArgument.
func (p *Parser) parseArguments() *tree.Node {
	switch p.kind() {
	case syntax.StringLiteralToken, syntax.LongStringLiteralToken:
		str := tree.NewNode(syntax.StringLiteralExpression, tree.T(p.advance()))
		return tree.NewNode(syntax.StringArgument, tree.N(str))
	case syntax.OpenBraceToken:
		return tree.NewNode(syntax.TableArgument, tree.N(p.parseTableConstructor()))
	case syntax.OpenParenToken:
		open := p.advance()
		children := []tree.Child{tree.T(open)}
		if !p.at(syntax.CloseParenToken) {
			children = append(children, tree.N(p.parseExpressionList()))
		}
		children = append(children, tree.T(p.expectClosing(syntax.CloseParenToken, &open)))
		return tree.NewNode(syntax.ArgumentList, children...)
	}
	open := p.missing(syntax.OpenParenToken)
	p.errorExpected(diag.SynExpectToken, "function arguments expected "+p.near()).
		WithFix("insert '()'", diag.InsertText(p.file.ID, open.Span.Start, "()")).
		Emit()
	return tree.NewNode(syntax.ArgumentList, tree.T(open), tree.T(p.missing(syntax.CloseParenToken)))
}

// parseExpressionList: expr {',' expr}. Многозначные выражения не на
// последнем месте оборачиваются в TruncatedExpression.
func (p *Parser) parseExpressionList() *tree.Node {
	items := []*tree.Node{p.parseExpression()}
	var seps []token.Token
	for p.at(syntax.CommaToken) {
		seps = append(seps, p.advance())
		items = append(items, p.parseExpression())
	}
	for i := 0; i < len(items)-1; i++ {
		items[i] = truncate(items[i])
	}
	return listNode(syntax.ExpressionList, items, seps)
}

// truncate оборачивает вызов или '...' в TruncatedExpression.
func truncate(n *tree.Node) *tree.Node {
	if syntax.IsMultiValued(n.Kind()) {
		return tree.NewNode(syntax.TruncatedExpression, tree.N(n))
	}
	return n
}
