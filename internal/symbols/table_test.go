package symbols_test

import (
	"testing"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/symbols"
)

func TestIndex_PrimitivesSeeded(t *testing.T) {
	store := ast.NewStore(nil)
	tbl := symbols.NewTable(symbols.Hints{}, nil, store)

	if _, ok := tbl.TypeTable["int32"]; !ok {
		t.Fatalf("expected int32 to be pre-registered")
	}
	if _, ok := tbl.TypeTable["string"]; !ok {
		t.Fatalf("expected string to be pre-registered")
	}
}

func TestIndex_ModuleAndStruct(t *testing.T) {
	store := ast.NewStore(nil)
	_, structDef, _ := store.NewStruct(ast.Struct{Identifier: "S"})
	_, moduleDef := store.NewModule(ast.Module{Identifier: "Test", Definitions: []ast.DefID{structDef}})
	store.AddUnit(&ast.CompilationUnit{Definitions: []ast.DefID{moduleDef}})

	tbl := symbols.NewTable(symbols.Hints{}, nil, store)
	bag := diag.NewBag(8)
	tbl.Index(store, &diag.BagReporter{Bag: bag})

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if _, ok := tbl.TypeTable["Test::S"]; !ok {
		t.Fatalf("expected Test::S in type table, got %v", tbl.TypeTable)
	}
	if _, ok := tbl.EntityTable["Test::S"]; !ok {
		t.Fatalf("expected Test::S in entity table")
	}
}

func TestIndex_Redefinition(t *testing.T) {
	store := ast.NewStore(nil)
	_, s1, _ := store.NewStruct(ast.Struct{Identifier: "S"})
	_, s2, _ := store.NewStruct(ast.Struct{Identifier: "S"})
	_, moduleDef := store.NewModule(ast.Module{Identifier: "Test", Definitions: []ast.DefID{s1, s2}})
	store.AddUnit(&ast.CompilationUnit{Definitions: []ast.DefID{moduleDef}})

	tbl := symbols.NewTable(symbols.Hints{}, nil, store)
	bag := diag.NewBag(8)
	tbl.Index(store, &diag.BagReporter{Bag: bag})

	if !bag.HasErrors() || bag.Items()[0].Code != diag.SemRedefinition {
		t.Fatalf("expected a redefinition diagnostic, got %v", bag.Items())
	}
}
