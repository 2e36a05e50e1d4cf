package syntax

// Kind tags every token and every tree node.
type Kind uint8

const (
	// None is the zero kind; it is never produced by the lexer or the parser.
	None Kind = iota

	// BadToken is a single unrecognised character.
	BadToken
	EndOfFileToken

	IdentifierToken
	NumericLiteralToken
	StringLiteralToken     // '...' or "..."
	LongStringLiteralToken // [[...]], [==[...]==]

	// Keywords.
	AndKeyword
	BreakKeyword
	DoKeyword
	ElseKeyword
	ElseIfKeyword
	EndKeyword
	FalseKeyword
	ForKeyword
	FunctionKeyword
	GotoKeyword
	IfKeyword
	InKeyword
	LocalKeyword
	NilKeyword
	NotKeyword
	OrKeyword
	RepeatKeyword
	ReturnKeyword
	ThenKeyword
	TrueKeyword
	UntilKeyword
	WhileKeyword

	// Punctuation and operators.
	PlusToken                   // +
	MinusToken                  // -
	AsteriskToken               // *
	SlashToken                  // /
	SlashSlashToken             // //
	PercentToken                // %
	CaretToken                  // ^
	HashToken                   // #
	AmpersandToken              // &
	TildeToken                  // ~
	BarToken                    // |
	LessThanLessThanToken       // <<
	GreaterThanGreaterThanToken // >>
	EqualsEqualsToken           // ==
	TildeEqualsToken            // ~=
	LessThanEqualsToken         // <=
	GreaterThanEqualsToken      // >=
	LessThanToken               // <
	GreaterThanToken            // >
	EqualsToken                 // =
	OpenParenToken              // (
	CloseParenToken             // )
	OpenBraceToken              // {
	CloseBraceToken             // }
	OpenBracketToken            // [
	CloseBracketToken           // ]
	ColonColonToken             // ::
	SemicolonToken              // ;
	ColonToken                  // :
	CommaToken                  // ,
	DotToken                    // .
	DotDotToken                 // ..
	DotDotDotToken              // ...

	// Structure.
	Chunk
	Block

	// Statements.
	EmptyStatement
	AssignmentStatement
	ExpressionStatement
	LabelStatement
	BreakStatement
	GotoStatement
	DoStatement
	WhileStatement
	RepeatStatement
	IfStatement
	ElseIfClause
	ElseClause
	NumericalForStatement
	GenericForStatement
	FunctionDefinitionStatement
	LocalFunctionDefinitionStatement
	LocalDeclarationStatement
	ReturnStatement
	// BadStatement holds tokens the parser could not place anywhere else.
	BadStatement

	// Expressions.
	NilLiteralExpression
	TrueLiteralExpression
	FalseLiteralExpression
	NumericLiteralExpression
	StringLiteralExpression
	VarargExpression
	FunctionDefinitionExpression
	TableConstructorExpression
	ParenthesizedExpression
	IdentifierName
	MemberAccessExpression
	ElementAccessExpression
	InvocationExpression
	ImplicitSelfParameterExpression
	// TruncatedExpression wraps a multi-valued expression (call or vararg)
	// that sits in a non-final position of a comma list and therefore
	// yields exactly one value.
	TruncatedExpression

	UnaryMinusExpression
	LogicalNotExpression
	LengthExpression
	BitwiseNotExpression

	AdditionExpression
	SubtractionExpression
	MultiplicationExpression
	DivisionExpression
	FloorDivisionExpression
	ModuloExpression
	PowerExpression
	ConcatenationExpression
	EqualExpression
	NotEqualExpression
	LessThanExpression
	LessThanOrEqualExpression
	GreaterThanExpression
	GreaterThanOrEqualExpression
	AndExpression
	OrExpression
	BitwiseAndExpression
	BitwiseOrExpression
	BitwiseExclusiveOrExpression
	BitwiseLeftShiftExpression
	BitwiseRightShiftExpression

	// Lists and helper nodes.
	ExpressionList
	NameList
	AttributedName
	VariableAttribute
	ParameterList
	Parameter
	VarargParameter
	FunctionBody
	ArgumentList
	StringArgument
	TableArgument
	FieldList
	ItemField
	KeyValueField
	NameValueField

	kindCount
)

// Count is the number of defined kinds, None included.
const Count = int(kindCount)
