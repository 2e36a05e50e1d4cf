// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lexer and the parser.
//   - Offer light-weight utilities (Reporter, Bag, ReportBuilder) that let
//     producers emit diagnostics without coupling to storage or formatting.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier (codes.go) with a stable string form
//     (LEX1001, SYN2002, INT9001, …). The numeric range is the error
//     category: lexical, syntax, or structural (parser defects).
//   - Message – short, actionable text in the style of the reference Lua
//     compiler ("'end' expected near <eof>").
//   - Primary – the span the caller should underline.
//   - Notes – secondary spans, e.g. the opening keyword of an unclosed block.
//   - Fixes – insert/replace edits, e.g. inserting a missing 'end'.
//
// Diagnostics are only ever appended during a parse. Bag.Sort orders them by
// position once the parse is complete; no deduplication happens in the core.
//
// Rendering lives in internal/diagfmt.
package diag
