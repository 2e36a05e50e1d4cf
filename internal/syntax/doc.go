// Package syntax defines the closed enumeration of syntax kinds shared by
// tokens and tree nodes.
//
// The enumeration is part of the external contract: consumers switch on Kind
// exhaustively, so values are only ever appended. Behaviour that would be a
// virtual method in a class hierarchy ("is this an expression?") is expressed
// as a capability query over Kind (IsExpression, IsStatement, ...).
//
// Trivia kinds are not syntax kinds; they live in package token.
package syntax
