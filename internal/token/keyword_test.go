package token

import "testing"

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"module":     KwModule,
		"struct":     KwStruct,
		"compact":    KwCompact,
		"class":      KwClass,
		"exception":  KwException,
		"interface":  KwInterface,
		"enum":       KwEnum,
		"unchecked":  KwUnchecked,
		"typealias":  KwTypealias,
		"sequence":   KwSequence,
		"dictionary": KwDictionary,
		"tag":        KwTag,
		"stream":     KwStream,
		"extends":    KwExtends,
		"throws":     KwThrows,
		"idempotent": KwIdempotent,
		"oneway":     KwOneway,
		"void":       KwVoid,
		"encoding":   KwEncoding,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Module", "STRUCT", // case matters — lowering is the lexer's job, not ours
		"bool", "int32", "uint64", "float64", "string", "AnyClass", // primitives are Ident
		"identifier", "toString",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
