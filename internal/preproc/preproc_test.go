package preproc_test

import (
	"testing"

	"slicec/internal/diag"
	"slicec/internal/lexer"
	"slicec/internal/preproc"
	"slicec/internal/source"
	"slicec/internal/token"
)

func drain(t *testing.T, content string, defines preproc.Defines) ([]string, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.slice", []byte(content))
	bag := diag.NewBag(64)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
	st := preproc.New(lx, defines, &diag.BagReporter{Bag: bag})

	var idents []string
	for {
		tok := st.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Ident {
			idents = append(idents, tok.Text)
		}
	}
	return idents, bag
}

func TestIf_Defined(t *testing.T) {
	idents, bag := drain(t, "A #if Foo B #endif C", preproc.NewDefines("Foo"))
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []string{"A", "B", "C"}
	if len(idents) != len(want) {
		t.Fatalf("got %v, want %v", idents, want)
	}
}

func TestIf_NotDefined(t *testing.T) {
	idents, bag := drain(t, "A #if Foo B #endif C", preproc.NewDefines())
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []string{"A", "C"}
	if len(idents) != len(want) || idents[0] != "A" || idents[1] != "C" {
		t.Fatalf("got %v, want %v", idents, want)
	}
}

func TestIfElse(t *testing.T) {
	idents, _ := drain(t, "#if Foo A #else B #endif", preproc.NewDefines())
	if len(idents) != 1 || idents[0] != "B" {
		t.Fatalf("expected else branch, got %v", idents)
	}
}

func TestIfElif(t *testing.T) {
	idents, _ := drain(t, "#if Foo A #elif Bar B #else C #endif", preproc.NewDefines("Bar"))
	if len(idents) != 1 || idents[0] != "B" {
		t.Fatalf("expected elif branch, got %v", idents)
	}
}

func TestNested(t *testing.T) {
	idents, bag := drain(t, "#if Foo #if Bar A #endif B #endif C", preproc.NewDefines("Foo"))
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []string{"B", "C"}
	if len(idents) != len(want) || idents[0] != "B" || idents[1] != "C" {
		t.Fatalf("got %v, want %v", idents, want)
	}
}

func TestUnmatchedEndif(t *testing.T) {
	_, bag := drain(t, "#endif A", preproc.NewDefines())
	if !bag.HasErrors() || bag.Items()[0].Code != diag.SynPreprocUnexpectedDirective {
		t.Fatalf("expected unexpected-directive diagnostic, got %v", bag.Items())
	}
}

func TestUnterminatedIf(t *testing.T) {
	_, bag := drain(t, "#if Foo A", preproc.NewDefines("Foo"))
	if !bag.HasErrors() || bag.Items()[0].Code != diag.SynPreprocUnterminatedIf {
		t.Fatalf("expected unterminated-if diagnostic, got %v", bag.Items())
	}
}

func TestUnknownDirective(t *testing.T) {
	_, bag := drain(t, "#bogus A", preproc.NewDefines())
	if !bag.HasErrors() || bag.Items()[0].Code != diag.SynPreprocUnknownDirective {
		t.Fatalf("expected unknown-directive diagnostic, got %v", bag.Items())
	}
}
