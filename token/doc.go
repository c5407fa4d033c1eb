// Package token splits Floyd datafile text into tokens.
//
// A [Tokenizer] produces tokens lazily with [Tokenizer.Next], in a single
// forward pass over the input. [Tokenize] collects every token of a
// document.
//
// Every token records its start and end [Pos], from which 1-based line and
// 0-based column numbers are derived.
package token
