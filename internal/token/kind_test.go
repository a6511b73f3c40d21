package token_test

import (
	"testing"

	"slicec/internal/source"
	"slicec/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.StringLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwStruct, token.LBrace}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Assign, token.Comma, token.Semicolon, token.Colon, token.ColonColon,
		token.Question, token.Lt, token.Gt, token.LParen, token.RParen,
		token.LBrace, token.RBrace, token.LBracket, token.RBracket, token.Hash,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwModule, token.IntLit}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwModule).IsIdent() {
		t.Fatalf("KwModule must not be ident")
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwModule, token.KwStruct, token.KwCompact, token.KwClass, token.KwException,
		token.KwInterface, token.KwEnum, token.KwUnchecked, token.KwCustom, token.KwTypealias,
		token.KwSequence, token.KwDictionary, token.KwTag, token.KwStream, token.KwExtends,
		token.KwThrows, token.KwIdempotent, token.KwOneway, token.KwVoid, token.KwEncoding,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatalf("Ident must not be keyword")
	}
}
