package syntax

// IsToken reports whether k tags a token rather than a node.
func IsToken(k Kind) bool {
	return k >= BadToken && k <= DotDotDotToken
}

// IsNode reports whether k tags a tree node.
func IsNode(k Kind) bool {
	return k >= Chunk && k < kindCount
}

func IsKeyword(k Kind) bool {
	return k >= AndKeyword && k <= WhileKeyword
}

func IsPunctuation(k Kind) bool {
	return k >= PlusToken && k <= DotDotDotToken
}

// IsLiteralToken reports numeric and string literal tokens.
func IsLiteralToken(k Kind) bool {
	switch k {
	case NumericLiteralToken, StringLiteralToken, LongStringLiteralToken:
		return true
	}
	return false
}

func IsStringToken(k Kind) bool {
	return k == StringLiteralToken || k == LongStringLiteralToken
}

func IsStatement(k Kind) bool {
	return k >= EmptyStatement && k <= BadStatement && k != ElseIfClause && k != ElseClause
}

func IsExpression(k Kind) bool {
	return k >= NilLiteralExpression && k <= BitwiseRightShiftExpression
}

func IsUnaryExpression(k Kind) bool {
	return k >= UnaryMinusExpression && k <= BitwiseNotExpression
}

func IsBinaryExpression(k Kind) bool {
	return k >= AdditionExpression && k <= BitwiseRightShiftExpression
}

// IsLiteralExpression reports nil, boolean, numeric and string literals.
func IsLiteralExpression(k Kind) bool {
	return k >= NilLiteralExpression && k <= StringLiteralExpression
}

// IsMultiValued reports expressions that may yield zero or more values
// when they end a comma list.
func IsMultiValued(k Kind) bool {
	return k == VarargExpression || k == InvocationExpression
}

// IsAssignable reports expressions that may appear on the left of '='.
func IsAssignable(k Kind) bool {
	switch k {
	case IdentifierName, MemberAccessExpression, ElementAccessExpression:
		return true
	}
	return false
}

func IsField(k Kind) bool {
	return k == ItemField || k == KeyValueField || k == NameValueField
}

// IsArguments reports the three call argument forms.
func IsArguments(k Kind) bool {
	return k == ArgumentList || k == StringArgument || k == TableArgument
}

// IsBlockEnd reports tokens that close a block: end, else, elseif, until and EOF.
func IsBlockEnd(k Kind) bool {
	switch k {
	case EndKeyword, ElseKeyword, ElseIfKeyword, UntilKeyword, EndOfFileToken:
		return true
	}
	return false
}

// StartsStatement reports tokens that can begin a statement.
func StartsStatement(k Kind) bool {
	switch k {
	case SemicolonToken, IfKeyword, WhileKeyword, DoKeyword, ForKeyword,
		RepeatKeyword, FunctionKeyword, LocalKeyword, ColonColonToken,
		ReturnKeyword, BreakKeyword, GotoKeyword,
		IdentifierToken, OpenParenToken:
		return true
	}
	return false
}

// StartsExpression reports tokens that can begin an expression.
func StartsExpression(k Kind) bool {
	switch k {
	case NilKeyword, TrueKeyword, FalseKeyword, NumericLiteralToken,
		StringLiteralToken, LongStringLiteralToken, DotDotDotToken,
		FunctionKeyword, OpenBraceToken, IdentifierToken, OpenParenToken,
		NotKeyword, HashToken, MinusToken, TildeToken:
		return true
	}
	return false
}
