package lexer

import (
	"testing"

	"slicec/internal/diag"
	"slicec/internal/source"
	"slicec/internal/token"
)

func lexAll(t *testing.T, content string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.slice", []byte(content))
	file := fs.Get(id)
	bag := diag.NewBag(64)
	lx := New(file, Options{Reporter: &diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestIdentifiers_ASCII(t *testing.T) {
	toks, _ := lexAll(t, "foo Bar _baz qux1")
	var idents []string
	for _, tok := range toks {
		if tok.Kind == token.Ident {
			idents = append(idents, tok.Text)
		}
	}
	want := []string{"foo", "Bar", "_baz", "qux1"}
	if len(idents) != len(want) {
		t.Fatalf("got %v, want %v", idents, want)
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Fatalf("got %v, want %v", idents, want)
		}
	}
}

func TestIdentifiers_Unicode(t *testing.T) {
	toks, _ := lexAll(t, "café")
	if toks[0].Kind != token.Ident || toks[0].Text != "café" {
		t.Fatalf("expected unicode ident, got %+v", toks[0])
	}
}

func TestKeywords_CaseSensitive(t *testing.T) {
	toks, _ := lexAll(t, "module Module struct")
	if toks[0].Kind != token.KwModule {
		t.Fatalf("expected KwModule, got %v", toks[0].Kind)
	}
	if toks[1].Kind != token.Ident {
		t.Fatalf("expected Ident for 'Module' (capitalized), got %v", toks[1].Kind)
	}
	if toks[2].Kind != token.KwStruct {
		t.Fatalf("expected KwStruct, got %v", toks[2].Kind)
	}
}

func TestPrimitivesAreIdentifiers(t *testing.T) {
	toks, _ := lexAll(t, "bool int32 string AnyClass")
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		if tok.Kind != token.Ident {
			t.Fatalf("expected primitive %q to lex as Ident, got %v", tok.Text, tok.Kind)
		}
	}
}

func TestNumbers_Decimal(t *testing.T) {
	toks, bag := lexAll(t, "0 123 1_000_000")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []string{"0", "123", "1_000_000"}
	for i, w := range want {
		if toks[i].Kind != token.IntLit || toks[i].Text != w {
			t.Fatalf("token %d: got %+v, want IntLit %q", i, toks[i], w)
		}
	}
}

func TestNumbers_Binary(t *testing.T) {
	toks, bag := lexAll(t, "0b1010_1010")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if toks[0].Kind != token.IntLit || toks[0].Text != "0b1010_1010" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestNumbers_Hexadecimal(t *testing.T) {
	toks, bag := lexAll(t, "0xDEAD_beef")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if toks[0].Kind != token.IntLit || toks[0].Text != "0xDEAD_beef" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestString_Simple(t *testing.T) {
	toks, bag := lexAll(t, `"hello world"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if toks[0].Kind != token.StringLit || toks[0].Text != `"hello world"` {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestString_Escapes(t *testing.T) {
	toks, bag := lexAll(t, `"a\"b\\c"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if toks[0].Kind != token.StringLit {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestString_Unterminated(t *testing.T) {
	_, bag := lexAll(t, `"unterminated`)
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected unterminated string diagnostic, got %v", bag.Items())
	}
}

func TestString_NewlineInString(t *testing.T) {
	_, bag := lexAll(t, "\"abc\ndef\"")
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected unterminated string diagnostic, got %v", bag.Items())
	}
}

func TestPunctuation(t *testing.T) {
	toks, bag := lexAll(t, `= , ; : :: ? < > ( ) { } [ ] #`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{
		token.Assign, token.Comma, token.Semicolon, token.Colon, token.ColonColon,
		token.Question, token.Lt, token.Gt, token.LParen, token.RParen,
		token.LBrace, token.RBrace, token.LBracket, token.RBracket, token.Hash,
		token.EOF,
	}
	if got := kinds(toks); len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	} else {
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestColonColon_GreedyOverColon(t *testing.T) {
	toks, _ := lexAll(t, "A::B")
	want := []token.Kind{token.Ident, token.ColonColon, token.Ident, token.EOF}
	if got := kinds(toks); len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if kinds(toks)[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v", i, kinds(toks)[i], want[i])
		}
	}
}

func TestTrivia_Spaces(t *testing.T) {
	toks, _ := lexAll(t, "  foo")
	if len(toks[0].Leading) != 1 || toks[0].Leading[0].Kind != token.TriviaSpace {
		t.Fatalf("expected leading space trivia, got %+v", toks[0].Leading)
	}
}

func TestTrivia_Newlines(t *testing.T) {
	toks, _ := lexAll(t, "\n\n\nfoo")
	if len(toks[0].Leading) != 1 || toks[0].Leading[0].Kind != token.TriviaNewline {
		t.Fatalf("expected coalesced newline trivia, got %+v", toks[0].Leading)
	}
}

func TestTrivia_LineComment(t *testing.T) {
	toks, _ := lexAll(t, "// a comment\nfoo")
	found := false
	for _, tv := range toks[0].Leading {
		if tv.Kind == token.TriviaLineComment {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected line comment trivia, got %+v", toks[0].Leading)
	}
}

func TestTrivia_DocLineComment(t *testing.T) {
	toks, _ := lexAll(t, "/// a doc line\nstruct S {}")
	found := false
	for _, tv := range toks[0].Leading {
		if tv.Kind == token.TriviaDocLine && tv.IsDoc() {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected doc-line trivia, got %+v", toks[0].Leading)
	}
}

func TestTrivia_BlockComment(t *testing.T) {
	toks, _ := lexAll(t, "/* block */ foo")
	found := false
	for _, tv := range toks[0].Leading {
		if tv.Kind == token.TriviaBlockComment {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected block comment trivia, got %+v", toks[0].Leading)
	}
}

func TestTrivia_DocBlockComment(t *testing.T) {
	toks, _ := lexAll(t, "/** a doc block */ foo")
	found := false
	for _, tv := range toks[0].Leading {
		if tv.Kind == token.TriviaDocBlock {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected doc-block trivia, got %+v", toks[0].Leading)
	}
}

func TestTrivia_UnterminatedBlockComment(t *testing.T) {
	_, bag := lexAll(t, "/* never closed")
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected unterminated block comment diagnostic, got %v", bag.Items())
	}
}

func TestLexer_SimpleModule(t *testing.T) {
	toks, bag := lexAll(t, "module Test\nclass C { i: int32; s: string }")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{
		token.KwModule, token.Ident,
		token.KwClass, token.Ident, token.LBrace,
		token.Ident, token.Colon, token.Ident, token.Semicolon,
		token.Ident, token.Colon, token.Ident,
		token.RBrace, token.EOF,
	}
	if got := kinds(toks); len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	} else {
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("token %d: got %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestLexer_PeekBehavior(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.slice", []byte("foo bar"))
	lx := New(fs.Get(id), Options{})

	peeked := lx.Peek()
	if peeked.Text != "foo" {
		t.Fatalf("expected peek to return 'foo', got %q", peeked.Text)
	}
	next := lx.Next()
	if next.Text != "foo" {
		t.Fatalf("expected Next after Peek to return the same token, got %q", next.Text)
	}
	second := lx.Next()
	if second.Text != "bar" {
		t.Fatalf("expected second token to be 'bar', got %q", second.Text)
	}
}

func TestLexer_EmptyInput(t *testing.T) {
	toks, bag := lexAll(t, "")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected a single EOF token, got %+v", toks)
	}
}

func TestLexer_OnlyWhitespace(t *testing.T) {
	toks, _ := lexAll(t, "   \n\n  ")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected a single EOF token, got %+v", toks)
	}
}

func TestLexer_UnknownCharacter(t *testing.T) {
	_, bag := lexAll(t, "$")
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected unknown character diagnostic, got %v", bag.Items())
	}
}
