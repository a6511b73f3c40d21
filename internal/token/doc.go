// Package token defines lexical token kinds and trivia for Slice source files.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Preprocessor directives (#if/#elif/#else/#endif) are ordinary tokens
//     (Hash followed by an Ident), not trivia; the preprocessor stage
//     consumes them before the parser ever sees them.
//   - Doc comments ("///" lines, "/** */" blocks) are leading Trivia and
//     never appear in the main token stream.
//   - Primitive type names (bool, int32, string, AnyClass, ...) are lexed as
//     plain identifiers; only structural keywords get their own Kind.
package token
