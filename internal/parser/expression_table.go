package parser

import (
	"github.com/qtyi/luna-sub005/internal/syntax"
	"github.com/qtyi/luna-sub005/internal/token"
	"github.com/qtyi/luna-sub005/internal/tree"
)

// pendingField хранит поле до сборки узла; ItemField собирается в конце,
// когда известно, последнее ли оно.
type pendingField struct {
	node *tree.Node // KeyValueField / NameValueField
	item *tree.Node // выражение ItemField
}

// parseTableConstructor: '{' FieldList '}'. Поля и разделители (',' или ';')
// чередуются в FieldList; завершающий разделитель допустим.
func (p *Parser) parseTableConstructor() *tree.Node {
	open := p.advance()

	var fields []pendingField
	var seps []token.Token
	for !p.at(syntax.CloseBraceToken) && !p.at(syntax.EndOfFileToken) {
		fields = append(fields, p.parseField())
		if !p.at(syntax.CommaToken) && !p.at(syntax.SemicolonToken) {
			break
		}
		seps = append(seps, p.advance())
	}
	closeTok := p.expectClosing(syntax.CloseBraceToken, &open)

	children := make([]tree.Child, 0, len(fields)+len(seps))
	for i, f := range fields {
		n := f.node
		if f.item != nil {
			expr := f.item
			if i < len(fields)-1 {
				expr = truncate(expr)
			}
			n = tree.NewNode(syntax.ItemField, tree.N(expr))
		}
		children = append(children, tree.N(n))
		if i < len(seps) {
			children = append(children, tree.T(seps[i]))
		}
	}

	return tree.NewNode(syntax.TableConstructorExpression,
		tree.T(open),
		tree.N(tree.NewNode(syntax.FieldList, children...)),
		tree.T(closeTok))
}

// parseField: '[' exp ']' '=' exp | Name '=' exp | exp.
func (p *Parser) parseField() pendingField {
	switch p.kind() {
	case syntax.OpenBracketToken:
		open := p.advance()
		key := p.parseExpression()
		closeTok := p.expectClosing(syntax.CloseBracketToken, &open)
		eq := p.expect(syntax.EqualsToken)
		val := p.parseExpression()
		return pendingField{node: tree.NewNode(syntax.KeyValueField,
			tree.T(open), tree.N(key), tree.T(closeTok), tree.T(eq), tree.N(val))}
	case syntax.IdentifierToken:
		m := p.mark()
		name := p.advance()
		if p.at(syntax.EqualsToken) {
			eq := p.advance()
			val := p.parseExpression()
			return pendingField{node: tree.NewNode(syntax.NameValueField, tree.T(name), tree.T(eq), tree.N(val))}
		}
		p.reset(m)
	}
	return pendingField{item: p.parseExpression()}
}
