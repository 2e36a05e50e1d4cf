package parser

import "github.com/qtyi/luna-sub005/internal/syntax"

// Приоритеты бинарных операторов: left/right как в lparser.c.
// Правоассоциативные операторы (.. и ^) имеют right < left.
type binaryPrec struct {
	left, right int
	node        syntax.Kind
}

const (
	precOr         = 1
	precAnd        = 2
	precComparison = 3  // < > <= >= ~= ==
	precBitOr      = 4  // |
	precBitXor     = 5  // ~
	precBitAnd     = 6  // &
	precShift      = 7  // << >>
	precConcat     = 9  // .. (right)
	precAdditive   = 10 // + -
	precMultiplic  = 11 // * / // %
	precUnary      = 12 // not # - ~
	precPower      = 14 // ^ (right)
)

var binaryOps = map[syntax.Kind]binaryPrec{
	syntax.OrKeyword:  {precOr, precOr, syntax.OrExpression},
	syntax.AndKeyword: {precAnd, precAnd, syntax.AndExpression},

	syntax.LessThanToken:          {precComparison, precComparison, syntax.LessThanExpression},
	syntax.GreaterThanToken:       {precComparison, precComparison, syntax.GreaterThanExpression},
	syntax.LessThanEqualsToken:    {precComparison, precComparison, syntax.LessThanOrEqualExpression},
	syntax.GreaterThanEqualsToken: {precComparison, precComparison, syntax.GreaterThanOrEqualExpression},
	syntax.TildeEqualsToken:       {precComparison, precComparison, syntax.NotEqualExpression},
	syntax.EqualsEqualsToken:      {precComparison, precComparison, syntax.EqualExpression},

	syntax.BarToken:                    {precBitOr, precBitOr, syntax.BitwiseOrExpression},
	syntax.TildeToken:                  {precBitXor, precBitXor, syntax.BitwiseExclusiveOrExpression},
	syntax.AmpersandToken:              {precBitAnd, precBitAnd, syntax.BitwiseAndExpression},
	syntax.LessThanLessThanToken:       {precShift, precShift, syntax.BitwiseLeftShiftExpression},
	syntax.GreaterThanGreaterThanToken: {precShift, precShift, syntax.BitwiseRightShiftExpression},

	syntax.DotDotToken: {precConcat, precConcat - 1, syntax.ConcatenationExpression},

	syntax.PlusToken:  {precAdditive, precAdditive, syntax.AdditionExpression},
	syntax.MinusToken: {precAdditive, precAdditive, syntax.SubtractionExpression},

	syntax.AsteriskToken:   {precMultiplic, precMultiplic, syntax.MultiplicationExpression},
	syntax.SlashToken:      {precMultiplic, precMultiplic, syntax.DivisionExpression},
	syntax.SlashSlashToken: {precMultiplic, precMultiplic, syntax.FloorDivisionExpression},
	syntax.PercentToken:    {precMultiplic, precMultiplic, syntax.ModuloExpression},

	syntax.CaretToken: {precPower, precPower - 1, syntax.PowerExpression},
}

// binaryOp возвращает приоритет оператора; ok == false: не бинарный оператор.
func binaryOp(k syntax.Kind) (binaryPrec, bool) {
	op, ok := binaryOps[k]
	return op, ok
}

// unaryOp maps a prefix operator token to its expression kind.
func unaryOp(k syntax.Kind) syntax.Kind {
	switch k {
	case syntax.NotKeyword:
		return syntax.LogicalNotExpression
	case syntax.MinusToken:
		return syntax.UnaryMinusExpression
	case syntax.HashToken:
		return syntax.LengthExpression
	case syntax.TildeToken:
		return syntax.BitwiseNotExpression
	}
	return syntax.None
}
