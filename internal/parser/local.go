package parser

import (
	"fmt"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

const (
	attrConst = "const"
	attrClose = "close"
)

// parseLocalDeclaration: 'local' AttributedName {',' AttributedName} ['=' explist].
func (p *Parser) parseLocalDeclaration() *tree.Node {
	local := p.advance()

	var names []*tree.Node
	var seps []token.Token
	var firstClose *tree.Node
	for {
		name, attr := p.parseAttributedName()
		names = append(names, name)
		if attr == attrClose {
			if firstClose == nil {
				firstClose = name
			} else {
				p.errorAt(diag.SynMultipleToBeClosed, name.Span(),
					"multiple to-be-closed variables in local list").
					WithNote(firstClose.Span(), "first to-be-closed variable declared here").
					Emit()
			}
		}
		if !p.at(syntax.CommaToken) {
			break
		}
		seps = append(seps, p.advance())
	}

	children := []tree.Child{tree.T(local), tree.N(listNode(syntax.NameList, names, seps))}
	if eq, ok := p.accept(syntax.EqualsToken); ok {
		children = append(children, tree.T(eq), tree.N(p.parseExpressionList()))
	}
	return tree.NewNode(syntax.LocalDeclarationStatement, children...)
}

// parseAttributedName: Name ['<' Name '>']. Возвращает узел и текст атрибута.
func (p *Parser) parseAttributedName() (*tree.Node, string) {
	name := p.expectName()
	if !p.at(syntax.LessThanToken) {
		return tree.NewNode(syntax.AttributedName, tree.T(name)), ""
	}
	open := p.advance()
	attr := p.expectName()
	closeTok := p.expectClosing(syntax.GreaterThanToken, &open)
	if !attr.Missing && attr.Text != attrConst && attr.Text != attrClose {
		p.errorAt(diag.SynUnknownAttribute, attr.Span,
			fmt.Sprintf("unknown attribute '%s'", attr.Text)).
			WithNote(attr.Span, "expected 'const' or 'close'").
			Emit()
	}
	va := tree.NewNode(syntax.VariableAttribute, tree.T(open), tree.T(attr), tree.T(closeTok))
	return tree.NewNode(syntax.AttributedName, tree.T(name), tree.N(va)), attr.Text
}
