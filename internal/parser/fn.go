package parser

import (
	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// parseFunctionStatement: 'function' funcname FunctionBody, где
// funcname = Name {'.' Name} [':' Name].
func (p *Parser) parseFunctionStatement() *tree.Node {
	kw := p.advance()
	name := p.parseFunctionName()
	body := p.parseFunctionBody(&kw)
	return tree.NewNode(syntax.FunctionDefinitionStatement, tree.T(kw), tree.N(name), tree.N(body))
}

func (p *Parser) parseFunctionName() *tree.Node {
	name := tree.NewNode(syntax.IdentifierName, tree.T(p.expectName()))
	for p.at(syntax.DotToken) {
		dot := p.advance()
		name = tree.NewNode(syntax.MemberAccessExpression, tree.N(name), tree.T(dot), tree.T(p.expectName()))
	}
	if p.at(syntax.ColonToken) {
		colon := p.advance()
		name = tree.NewNode(syntax.ImplicitSelfParameterExpression, tree.N(name), tree.T(colon), tree.T(p.expectName()))
	}
	return name
}

// parseLocalFunctionStatement: 'local' 'function' Name FunctionBody.
func (p *Parser) parseLocalFunctionStatement() *tree.Node {
	local := p.advance()
	kw := p.advance()
	name := p.expectName()
	body := p.parseFunctionBody(&kw)
	return tree.NewNode(syntax.LocalFunctionDefinitionStatement,
		tree.T(local), tree.T(kw), tree.T(name), tree.N(body))
}

// parseFunctionBody: ParameterList Block 'end'. opener: токен 'function'
// для note о незакрытом 'end'.
func (p *Parser) parseFunctionBody(opener *token.Token) *tree.Node {
	params, vararg := p.parseParameterList()
	p.varargs = append(p.varargs, vararg)
	body := p.parseBlock(syntax.EndKeyword)
	p.varargs = p.varargs[:len(p.varargs)-1]
	end := p.expectClosing(syntax.EndKeyword, opener)
	return tree.NewNode(syntax.FunctionBody, tree.N(params), tree.N(body), tree.T(end))
}

// parseParameterList: '(' [Name {',' Name} [',' '...'] | '...'] ')'.
// Возвращает узел и признак vararg-функции.
func (p *Parser) parseParameterList() (*tree.Node, bool) {
	open := p.expect(syntax.OpenParenToken)
	if open.Missing {
		return tree.NewNode(syntax.ParameterList, tree.T(open), tree.T(p.missing(syntax.CloseParenToken))), false
	}

	children := []tree.Child{tree.T(open)}
	var varargTok *token.Token
	reported := false
	if !p.at(syntax.CloseParenToken) {
		for {
			switch p.kind() {
			case syntax.IdentifierToken:
				children = append(children, tree.N(tree.NewNode(syntax.Parameter, tree.T(p.advance()))))
			case syntax.DotDotDotToken:
				tok := p.advance()
				if varargTok == nil {
					varargTok = &tok
				}
				children = append(children, tree.N(tree.NewNode(syntax.VarargParameter, tree.T(tok))))
			default:
				p.errorExpected(diag.SynExpectIdentifier, "<name> expected "+p.near()).Emit()
				children = append(children, tree.N(tree.NewNode(syntax.Parameter, tree.T(p.missing(syntax.IdentifierToken)))))
			}
			if !p.at(syntax.CommaToken) {
				break
			}
			if varargTok != nil && !reported {
				reported = true
				p.errorAt(diag.SynVarargNotLast, varargTok.Span, "')' expected near ','").
					WithNote(varargTok.Span, "'...' must be the last parameter").
					Emit()
			}
			children = append(children, tree.T(p.advance()))
			if !p.at(syntax.IdentifierToken) && !p.at(syntax.DotDotDotToken) {
				p.errorExpected(diag.SynExpectIdentifier, "<name> expected "+p.near()).Emit()
				children = append(children, tree.N(tree.NewNode(syntax.Parameter, tree.T(p.missing(syntax.IdentifierToken)))))
				break
			}
		}
	}
	children = append(children, tree.T(p.expectClosing(syntax.CloseParenToken, &open)))
	return tree.NewNode(syntax.ParameterList, children...), varargTok != nil
}
