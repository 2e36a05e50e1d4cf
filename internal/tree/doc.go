// Package tree holds the lossless syntax tree.
//
// Node is the immutable "green" layer: a kind plus an ordered list of
// children, each either a nested Node or a Token. Concatenating the full
// text of the children of any node reproduces exactly the source it was
// parsed from, trivia included.
//
// SyntaxNode is the derived "red" layer built on demand from a root. It adds
// parent links and absolute offsets and is never stored in the green tree.
package tree
