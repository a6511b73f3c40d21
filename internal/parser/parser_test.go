package parser

import (
	"testing"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/lexer"
	"slicec/internal/source"
	"slicec/internal/symbols"
)

func parseSource(t *testing.T, content string) (Result, *ast.Store, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.slice", []byte(content))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	store := ast.NewStore(nil)
	scopes := symbols.NewScopes(0)

	res := ParseFile(fileID, lx, store, scopes, Options{Reporter: reporter})
	return res, store, bag
}

func TestParseFile_ModuleBraced(t *testing.T) {
	res, store, bag := parseSource(t, `
module M {
  struct Point {
    x: int32,
    y: int32,
  }
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(res.Unit.Definitions) != 1 {
		t.Fatalf("expected one top-level definition, got %d", len(res.Unit.Definitions))
	}
	mod := store.Modules.Get(uint32(res.Unit.Definitions[0].Idx))
	if mod.Identifier != "M" {
		t.Fatalf("expected module M, got %q", mod.Identifier)
	}
	if len(mod.Definitions) != 1 {
		t.Fatalf("expected one nested definition, got %d", len(mod.Definitions))
	}
	st := store.Structs.Get(uint32(mod.Definitions[0].Idx))
	if st.Identifier != "Point" || len(st.Fields) != 2 {
		t.Fatalf("unexpected struct: %+v", st)
	}
}

func TestParseFile_WholeFileModule(t *testing.T) {
	res, store, bag := parseSource(t, `
module A::B;

exception Oops {
  message: string,
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	outer := store.Modules.Get(uint32(res.Unit.Definitions[0].Idx))
	if outer.Identifier != "A" {
		t.Fatalf("expected outer module A, got %q", outer.Identifier)
	}
	inner := store.Modules.Get(uint32(outer.Definitions[0].Idx))
	if inner.Identifier != "B" {
		t.Fatalf("expected inner module B, got %q", inner.Identifier)
	}
	if len(inner.Definitions) != 1 {
		t.Fatalf("expected one definition in B, got %d", len(inner.Definitions))
	}
	exc := store.Exceptions.Get(uint32(inner.Definitions[0].Idx))
	if exc.Identifier != "Oops" {
		t.Fatalf("expected exception Oops, got %q", exc.Identifier)
	}
}

func TestParseFile_EncodingDirective(t *testing.T) {
	res, _, bag := parseSource(t, `
encoding = Slice1;
module M;
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if !res.Unit.EncodingDeclared || res.Unit.Encoding != ast.EncodingSlice1 {
		t.Fatalf("expected declared Slice1 encoding, got %+v", res.Unit)
	}
}

func TestParseFile_DuplicateEncodingDirective(t *testing.T) {
	_, _, bag := parseSource(t, `
encoding = Slice1;
encoding = Slice2;
module M;
`)
	if !bag.HasErrors() || bag.Items()[0].Code != diag.SynMultipleCompilationModes {
		t.Fatalf("expected a duplicate compilation mode diagnostic, got %v", bag.Items())
	}
}

func TestParseFile_InterfaceWithOperation(t *testing.T) {
	res, store, bag := parseSource(t, `
module M {
  interface Greeter {
    idempotent greet(name: string) -> string;
  }
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	mod := store.Modules.Get(uint32(res.Unit.Definitions[0].Idx))
	iface := store.Interfaces.Get(uint32(mod.Definitions[0].Idx))
	if iface.Identifier != "Greeter" || len(iface.Operations) != 1 {
		t.Fatalf("unexpected interface: %+v", iface)
	}
	op := store.Operations.Get(uint32(iface.Operations[0]))
	if !op.IsIdempotent || op.Identifier != "greet" {
		t.Fatalf("unexpected operation: %+v", op)
	}
	if len(op.Parameters) != 1 || len(op.ReturnMembers) != 1 {
		t.Fatalf("expected one parameter and one return member, got %+v", op)
	}
}

func TestParseFile_FileAttributeAndEntityAttribute(t *testing.T) {
	res, store, bag := parseSource(t, `
[[deprecated]]
[deprecated("use Bar instead")]
struct Foo {
  x: int32,
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(res.Unit.FileAttrs) != 1 {
		t.Fatalf("expected one file attribute, got %d", len(res.Unit.FileAttrs))
	}
	st := store.Structs.Get(uint32(res.Unit.Definitions[0].Idx))
	if len(st.Attrs) != 1 {
		t.Fatalf("expected one entity attribute on Foo, got %d", len(st.Attrs))
	}
}

func TestParseFile_MalformedFieldRecovers(t *testing.T) {
	res, store, bag := parseSource(t, `
struct Bad {
  123: int32,
  y: int32,
}
`)
	if !bag.HasErrors() {
		t.Fatalf("expected a diagnostic for the malformed field")
	}
	st := store.Structs.Get(uint32(res.Unit.Definitions[0].Idx))
	if len(st.Fields) != 1 || st.Fields[0] == ast.NoFieldID {
		t.Fatalf("expected recovery to keep the well-formed field y, got %+v", st.Fields)
	}
}
