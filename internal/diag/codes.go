package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexMalformedNumber          Code = 1004
	LexTokenTooLong             Code = 1005
	LexUnterminatedLongString   Code = 1006
	LexInvalidLongBracket       Code = 1007
	LexInvalidEscape            Code = 1008
	LexEscapeTooLarge           Code = 1009
	LexMalformedUnicodeEscape   Code = 1010
	LexShebangNotAllowed        Code = 1011

	// Парсерные
	SynInfo                    Code = 2000
	SynUnexpectedToken         Code = 2001
	SynExpectToken             Code = 2002
	SynExpectExpression        Code = 2003
	SynExpectIdentifier        Code = 2004
	SynExpectCall              Code = 2005
	SynInvalidAssignmentTarget Code = 2006
	SynVarargOutsideFunction   Code = 2007
	SynVarargNotLast           Code = 2008
	SynUnknownAttribute        Code = 2009
	SynMultipleToBeClosed      Code = 2010
	SynForBadHeader            Code = 2011
	SynReturnNotLast           Code = 2012
	SynUnclosedDelimiter       Code = 2013
	SynTooDeep                 Code = 2014
	SynExpectStatement         Code = 2015
	SynStrayTerminator         Code = 2016

	// Ошибки I/O
	IOLoadFileError Code = 4001

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001

	// Внутренние инварианты парсера (дефекты, не пользовательский ввод)
	IntNoProgress  Code = 9001
	IntParserPanic Code = 9002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated long comment",
		LexMalformedNumber:          "Malformed number",
		LexTokenTooLong:             "Token too long",
		LexUnterminatedLongString:   "Unterminated long string",
		LexInvalidLongBracket:       "Invalid long string delimiter",
		LexInvalidEscape:            "Invalid escape sequence",
		LexEscapeTooLarge:           "Escape sequence value too large",
		LexMalformedUnicodeEscape:   "Malformed unicode escape",
		LexShebangNotAllowed:        "Shebang line is not allowed in a fragment",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynExpectToken:              "Expected token",
		SynExpectExpression:         "Expected expression",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectCall:               "Expression statement is not a call",
		SynInvalidAssignmentTarget:  "Invalid assignment target",
		SynVarargOutsideFunction:    "Vararg outside a vararg function",
		SynVarargNotLast:            "Vararg parameter must be last",
		SynUnknownAttribute:         "Unknown local attribute",
		SynMultipleToBeClosed:       "Multiple to-be-closed variables",
		SynForBadHeader:             "Malformed numeric for header",
		SynReturnNotLast:            "Return must be the last statement",
		SynUnclosedDelimiter:        "Unclosed construct",
		SynTooDeep:                  "Too many syntax levels",
		SynExpectStatement:          "Expected statement",
		SynStrayTerminator:          "Stray block terminator",
		IOLoadFileError:             "Failed to load file",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Timings",
		IntNoProgress:               "Parser made no progress",
		IntParserPanic:              "Parser panicked",
	}
)

// ID returns the stable textual identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("INT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return c.ID()
}

// Category classifies a code into the error taxonomy.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryLexical
	CategorySyntax
	CategoryStructural
)

func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CategoryLexical
	case ic >= 2000 && ic < 3000:
		return CategorySyntax
	case ic >= 9000 && ic < 10000:
		return CategoryStructural
	}
	return CategoryOther
}
