package token_test

import (
	"testing"

	"slicec/internal/source"
	"slicec/internal/token"
)

func TestTriviaShape(t *testing.T) {
	doc := token.Trivia{
		Kind: token.TriviaDocLine,
		Span: source.Span{Start: 0, End: 10},
		Text: "/// a field comment",
	}
	tok := token.Token{
		Kind:    token.KwStruct,
		Span:    source.Span{Start: 42, End: 48},
		Text:    "struct",
		Leading: []token.Trivia{doc},
	}
	if len(tok.Leading) != 1 || !tok.Leading[0].IsDoc() {
		t.Fatalf("doc trivia must be present and recognized as doc")
	}
}

func TestTrivia_IsDoc(t *testing.T) {
	doc := []token.TriviaKind{token.TriviaDocLine, token.TriviaDocBlock}
	for _, k := range doc {
		if !(token.Trivia{Kind: k}).IsDoc() {
			t.Fatalf("%v should be doc trivia", k)
		}
	}
	non := []token.TriviaKind{token.TriviaSpace, token.TriviaNewline, token.TriviaLineComment, token.TriviaBlockComment}
	for _, k := range non {
		if (token.Trivia{Kind: k}).IsDoc() {
			t.Fatalf("%v must NOT be doc trivia", k)
		}
	}
}
