package token

import "slicec/internal/source"

// TriviaKind classifies types of non-code source elements.
type TriviaKind uint8

const (
	// TriviaSpace represents horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline represents a newline character.
	TriviaNewline
	// TriviaLineComment represents a '//' line comment.
	TriviaLineComment
	// TriviaBlockComment represents a '/* */' block comment.
	TriviaBlockComment
	// TriviaDocLine represents a '///' doc comment line.
	TriviaDocLine
	// TriviaDocBlock represents a '/** */' doc comment block.
	TriviaDocBlock
)

// Trivia represents a non-code source element attached as leading context to a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsDoc reports whether this trivia is part of a doc comment.
func (t Trivia) IsDoc() bool {
	return t.Kind == TriviaDocLine || t.Kind == TriviaDocBlock
}
