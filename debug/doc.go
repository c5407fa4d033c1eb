// Package debug holds the environment driven debug switches and the
// logger debug output goes to.
//
//	FDF_DEBUG_TOKENS  log every token produced by the tokenizer
//	FDF_DEBUG_PARSE   log every value produced by the parser
package debug
