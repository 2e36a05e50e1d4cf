package syntax

import "fmt"

var kindNames = [...]string{
	None:                             "None",
	BadToken:                         "BadToken",
	EndOfFileToken:                   "EndOfFileToken",
	IdentifierToken:                  "IdentifierToken",
	NumericLiteralToken:              "NumericLiteralToken",
	StringLiteralToken:               "StringLiteralToken",
	LongStringLiteralToken:           "LongStringLiteralToken",
	AndKeyword:                       "AndKeyword",
	BreakKeyword:                     "BreakKeyword",
	DoKeyword:                        "DoKeyword",
	ElseKeyword:                      "ElseKeyword",
	ElseIfKeyword:                    "ElseIfKeyword",
	EndKeyword:                       "EndKeyword",
	FalseKeyword:                     "FalseKeyword",
	ForKeyword:                       "ForKeyword",
	FunctionKeyword:                  "FunctionKeyword",
	GotoKeyword:                      "GotoKeyword",
	IfKeyword:                        "IfKeyword",
	InKeyword:                        "InKeyword",
	LocalKeyword:                     "LocalKeyword",
	NilKeyword:                       "NilKeyword",
	NotKeyword:                       "NotKeyword",
	OrKeyword:                        "OrKeyword",
	RepeatKeyword:                    "RepeatKeyword",
	ReturnKeyword:                    "ReturnKeyword",
	ThenKeyword:                      "ThenKeyword",
	TrueKeyword:                      "TrueKeyword",
	UntilKeyword:                     "UntilKeyword",
	WhileKeyword:                     "WhileKeyword",
	PlusToken:                        "PlusToken",
	MinusToken:                       "MinusToken",
	AsteriskToken:                    "AsteriskToken",
	SlashToken:                       "SlashToken",
	SlashSlashToken:                  "SlashSlashToken",
	PercentToken:                     "PercentToken",
	CaretToken:                       "CaretToken",
	HashToken:                        "HashToken",
	AmpersandToken:                   "AmpersandToken",
	TildeToken:                       "TildeToken",
	BarToken:                         "BarToken",
	LessThanLessThanToken:            "LessThanLessThanToken",
	GreaterThanGreaterThanToken:      "GreaterThanGreaterThanToken",
	EqualsEqualsToken:                "EqualsEqualsToken",
	TildeEqualsToken:                 "TildeEqualsToken",
	LessThanEqualsToken:              "LessThanEqualsToken",
	GreaterThanEqualsToken:           "GreaterThanEqualsToken",
	LessThanToken:                    "LessThanToken",
	GreaterThanToken:                 "GreaterThanToken",
	EqualsToken:                      "EqualsToken",
	OpenParenToken:                   "OpenParenToken",
	CloseParenToken:                  "CloseParenToken",
	OpenBraceToken:                   "OpenBraceToken",
	CloseBraceToken:                  "CloseBraceToken",
	OpenBracketToken:                 "OpenBracketToken",
	CloseBracketToken:                "CloseBracketToken",
	ColonColonToken:                  "ColonColonToken",
	SemicolonToken:                   "SemicolonToken",
	ColonToken:                       "ColonToken",
	CommaToken:                       "CommaToken",
	DotToken:                         "DotToken",
	DotDotToken:                      "DotDotToken",
	DotDotDotToken:                   "DotDotDotToken",
	Chunk:                            "Chunk",
	Block:                            "Block",
	EmptyStatement:                   "EmptyStatement",
	AssignmentStatement:              "AssignmentStatement",
	ExpressionStatement:              "ExpressionStatement",
	LabelStatement:                   "LabelStatement",
	BreakStatement:                   "BreakStatement",
	GotoStatement:                    "GotoStatement",
	DoStatement:                      "DoStatement",
	WhileStatement:                   "WhileStatement",
	RepeatStatement:                  "RepeatStatement",
	IfStatement:                      "IfStatement",
	ElseIfClause:                     "ElseIfClause",
	ElseClause:                       "ElseClause",
	NumericalForStatement:            "NumericalForStatement",
	GenericForStatement:              "GenericForStatement",
	FunctionDefinitionStatement:      "FunctionDefinitionStatement",
	LocalFunctionDefinitionStatement: "LocalFunctionDefinitionStatement",
	LocalDeclarationStatement:        "LocalDeclarationStatement",
	ReturnStatement:                  "ReturnStatement",
	BadStatement:                     "BadStatement",
	NilLiteralExpression:             "NilLiteralExpression",
	TrueLiteralExpression:            "TrueLiteralExpression",
	FalseLiteralExpression:           "FalseLiteralExpression",
	NumericLiteralExpression:         "NumericLiteralExpression",
	StringLiteralExpression:          "StringLiteralExpression",
	VarargExpression:                 "VarargExpression",
	FunctionDefinitionExpression:     "FunctionDefinitionExpression",
	TableConstructorExpression:       "TableConstructorExpression",
	ParenthesizedExpression:          "ParenthesizedExpression",
	IdentifierName:                   "IdentifierName",
	MemberAccessExpression:           "MemberAccessExpression",
	ElementAccessExpression:          "ElementAccessExpression",
	InvocationExpression:             "InvocationExpression",
	ImplicitSelfParameterExpression:  "ImplicitSelfParameterExpression",
	TruncatedExpression:              "TruncatedExpression",
	UnaryMinusExpression:             "UnaryMinusExpression",
	LogicalNotExpression:             "LogicalNotExpression",
	LengthExpression:                 "LengthExpression",
	BitwiseNotExpression:             "BitwiseNotExpression",
	AdditionExpression:               "AdditionExpression",
	SubtractionExpression:            "SubtractionExpression",
	MultiplicationExpression:         "MultiplicationExpression",
	DivisionExpression:               "DivisionExpression",
	FloorDivisionExpression:          "FloorDivisionExpression",
	ModuloExpression:                 "ModuloExpression",
	PowerExpression:                  "PowerExpression",
	ConcatenationExpression:          "ConcatenationExpression",
	EqualExpression:                  "EqualExpression",
	NotEqualExpression:               "NotEqualExpression",
	LessThanExpression:               "LessThanExpression",
	LessThanOrEqualExpression:        "LessThanOrEqualExpression",
	GreaterThanExpression:            "GreaterThanExpression",
	GreaterThanOrEqualExpression:     "GreaterThanOrEqualExpression",
	AndExpression:                    "AndExpression",
	OrExpression:                     "OrExpression",
	BitwiseAndExpression:             "BitwiseAndExpression",
	BitwiseOrExpression:              "BitwiseOrExpression",
	BitwiseExclusiveOrExpression:     "BitwiseExclusiveOrExpression",
	BitwiseLeftShiftExpression:       "BitwiseLeftShiftExpression",
	BitwiseRightShiftExpression:      "BitwiseRightShiftExpression",
	ExpressionList:                   "ExpressionList",
	NameList:                         "NameList",
	AttributedName:                   "AttributedName",
	VariableAttribute:                "VariableAttribute",
	ParameterList:                    "ParameterList",
	Parameter:                        "Parameter",
	VarargParameter:                  "VarargParameter",
	FunctionBody:                     "FunctionBody",
	ArgumentList:                     "ArgumentList",
	StringArgument:                   "StringArgument",
	TableArgument:                    "TableArgument",
	FieldList:                        "FieldList",
	ItemField:                        "ItemField",
	KeyValueField:                    "KeyValueField",
	NameValueField:                   "NameValueField",
}

// String returns the stable name of the kind, e.g. "LocalDeclarationStatement".
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for i, name := range kindNames {
		m[name] = Kind(i)
	}
	return m
}()

// Lookup returns the kind with the given String name.
func Lookup(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}
