package cycle_test

import (
	"testing"

	"slicec/internal/ast"
	"slicec/internal/cycle"
	"slicec/internal/diag"
	"slicec/internal/source"
)

func patchedRef(store *ast.Store, target ast.TypeID) ast.TypeRefID {
	id := store.NewTypeRef("x", false, ast.ScopeRef{}, source.Span{})
	r := store.TypeRefs.Get(uint32(id))
	r.State = ast.Patched
	r.Definition = target
	return id
}

func TestDetect_DirectCycle(t *testing.T) {
	store := ast.NewStore(nil)

	sIdx, _, sType := store.NewStruct(ast.Struct{Identifier: "S"})
	_ = sIdx

	fieldRef := patchedRef(store, sType)
	fieldID := store.NewField(ast.Field{Identifier: "self", DataType: fieldRef})

	s := store.Structs.Get(sType.Idx)
	s.Fields = []ast.FieldID{fieldID}

	bag := diag.NewBag(8)
	cycle.Detect(store, &diag.BagReporter{Bag: bag})

	if !bag.HasErrors() || bag.Items()[0].Code != diag.SemCycleDetected {
		t.Fatalf("expected a cycle diagnostic, got %v", bag.Items())
	}
}

func TestDetect_NoCycleThroughOptional(t *testing.T) {
	store := ast.NewStore(nil)

	_, _, sType := store.NewStruct(ast.Struct{Identifier: "S"})
	optRef := store.NewTypeRef("x", true, ast.ScopeRef{}, source.Span{})
	r := store.TypeRefs.Get(uint32(optRef))
	r.State = ast.Patched
	r.Definition = sType

	fieldID := store.NewField(ast.Field{Identifier: "self", DataType: optRef})
	s := store.Structs.Get(sType.Idx)
	s.Fields = []ast.FieldID{fieldID}

	bag := diag.NewBag(8)
	cycle.Detect(store, &diag.BagReporter{Bag: bag})

	if bag.HasErrors() {
		t.Fatalf("optional field should not count as a containment edge, got %v", bag.Items())
	}
}

func TestDetect_NoCycleAcyclic(t *testing.T) {
	store := ast.NewStore(nil)

	i32 := store.NewPrimitive(ast.PrimInt32)
	ref := patchedRef(store, i32)
	fieldID := store.NewField(ast.Field{Identifier: "i", DataType: ref})

	_, _, sType := store.NewStruct(ast.Struct{Identifier: "S"})
	s := store.Structs.Get(sType.Idx)
	s.Fields = []ast.FieldID{fieldID}

	bag := diag.NewBag(8)
	cycle.Detect(store, &diag.BagReporter{Bag: bag})

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
}
