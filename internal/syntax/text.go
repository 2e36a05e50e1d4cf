package syntax

var fixedText = [...]string{
	EndOfFileToken: "",

	AndKeyword:      "and",
	BreakKeyword:    "break",
	DoKeyword:       "do",
	ElseKeyword:     "else",
	ElseIfKeyword:   "elseif",
	EndKeyword:      "end",
	FalseKeyword:    "false",
	ForKeyword:      "for",
	FunctionKeyword: "function",
	GotoKeyword:     "goto",
	IfKeyword:       "if",
	InKeyword:       "in",
	LocalKeyword:    "local",
	NilKeyword:      "nil",
	NotKeyword:      "not",
	OrKeyword:       "or",
	RepeatKeyword:   "repeat",
	ReturnKeyword:   "return",
	ThenKeyword:     "then",
	TrueKeyword:     "true",
	UntilKeyword:    "until",
	WhileKeyword:    "while",

	PlusToken:                   "+",
	MinusToken:                  "-",
	AsteriskToken:               "*",
	SlashToken:                  "/",
	SlashSlashToken:             "//",
	PercentToken:                "%",
	CaretToken:                  "^",
	HashToken:                   "#",
	AmpersandToken:              "&",
	TildeToken:                  "~",
	BarToken:                    "|",
	LessThanLessThanToken:       "<<",
	GreaterThanGreaterThanToken: ">>",
	EqualsEqualsToken:           "==",
	TildeEqualsToken:            "~=",
	LessThanEqualsToken:         "<=",
	GreaterThanEqualsToken:      ">=",
	LessThanToken:               "<",
	GreaterThanToken:            ">",
	EqualsToken:                 "=",
	OpenParenToken:              "(",
	CloseParenToken:             ")",
	OpenBraceToken:              "{",
	CloseBraceToken:             "}",
	OpenBracketToken:            "[",
	CloseBracketToken:           "]",
	ColonColonToken:             "::",
	SemicolonToken:              ";",
	ColonToken:                  ":",
	CommaToken:                  ",",
	DotToken:                    ".",
	DotDotToken:                 "..",
	DotDotDotToken:              "...",
}

// Text returns the fixed spelling of keyword and punctuation kinds, and ""
// for every kind whose text varies (identifiers, literals, nodes).
func Text(k Kind) string {
	if int(k) < len(fixedText) {
		return fixedText[k]
	}
	return ""
}

// Describe returns the form used in messages: the quoted spelling for fixed
// tokens, "<eof>" for end of file and a lower-case noun otherwise.
func Describe(k Kind) string {
	switch k {
	case EndOfFileToken:
		return "<eof>"
	case IdentifierToken:
		return "<name>"
	case NumericLiteralToken:
		return "<number>"
	case StringLiteralToken, LongStringLiteralToken:
		return "<string>"
	case BadToken:
		return "<bad token>"
	}
	if t := Text(k); t != "" {
		return "'" + t + "'"
	}
	return k.String()
}
