// Package token defines Lua tokens, their trivia and decoded literal values.
// Invariants:
//   - Token.Text is a slice of the original source (no copies); only decoded
//     literal payloads (Value.Bytes) are fresh allocations.
//   - Token.Span matches Text exactly. A missing token has Missing set, an
//     empty Span at the position it was expected, and empty Text.
//   - Leading + Text + Trailing of consecutive tokens cover the source with
//     no gaps and no overlaps.
//   - Trailing trivia ends at (and includes) the first end of line; all
//     later trivia belongs to the next token's Leading.
//   - Tokens the parser could not place are kept inside TriviaSkippedTokens
//     trivia, with their own trivia, so the text is never lost.
package token
