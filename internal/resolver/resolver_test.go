package resolver_test

import (
	"testing"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/resolver"
	"slicec/internal/source"
	"slicec/internal/symbols"
)

func TestPatch_ResolvesSameModule(t *testing.T) {
	store := ast.NewStore(nil)
	interner := store.Strings

	_, targetDef, _ := store.NewStruct(ast.Struct{Identifier: "Target"})
	_ = targetDef

	modSeg := interner.Intern("Test")
	ref := store.NewTypeRef("Target", false, ast.ScopeRef{ModuleScope: []source.StringID{modSeg}}, source.Span{})

	fieldID := store.NewField(ast.Field{Identifier: "f", DataType: ref})
	_, structDef, _ := store.NewStruct(ast.Struct{Identifier: "User", Fields: []ast.FieldID{fieldID}})

	_, moduleDef := store.NewModule(ast.Module{Identifier: "Test", Definitions: []ast.DefID{structDef}})
	store.AddUnit(&ast.CompilationUnit{Definitions: []ast.DefID{moduleDef}})

	tbl := symbols.NewTable(symbols.Hints{}, interner, store)
	bag := diag.NewBag(8)
	reporter := &diag.BagReporter{Bag: bag}
	tbl.Index(store, reporter)
	// Target was never indexed under Test (only User was, via moduleDef's
	// Definitions); register it directly to exercise same-module resolution.
	tIdx, _, tType := store.NewStruct(ast.Struct{Identifier: "Target2"})
	_ = tIdx
	tbl.TypeTable["Test::Target"] = tType

	resolver.Patch(store, tbl, reporter)

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	got := store.TypeRefs.Get(uint32(ref))
	if got.State != ast.Patched {
		t.Fatalf("expected ref to be patched")
	}
}

func TestPatch_Unresolved(t *testing.T) {
	store := ast.NewStore(nil)
	ref := store.NewTypeRef("Nope", false, ast.ScopeRef{}, source.Span{})
	store.AddUnit(&ast.CompilationUnit{})

	tbl := symbols.NewTable(symbols.Hints{}, store.Strings, store)
	bag := diag.NewBag(8)
	reporter := &diag.BagReporter{Bag: bag}
	resolver.Patch(store, tbl, reporter)

	if !bag.HasErrors() || bag.Items()[0].Code != diag.SemUnresolved {
		t.Fatalf("expected SemUnresolved diagnostic, got %v", bag.Items())
	}
}
