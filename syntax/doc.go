// Package syntax turns a buffer snapshot into highlight spans.
//
// A Tokenizer adapts a Chroma lexer into a lossless, restartable token
// sequence; a Mapper converts the tokens' flat rune offsets into
// per-line spans. Both are pure functions of the text they are given and
// keep no state between passes.
package syntax
