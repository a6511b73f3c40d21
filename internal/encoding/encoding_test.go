package encoding_test

import (
	"testing"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/encoding"
	"slicec/internal/source"
)

func patchedRef(store *ast.Store, target ast.TypeID, optional bool) ast.TypeRefID {
	id := store.NewTypeRef("x", optional, ast.ScopeRef{}, source.Span{})
	r := store.TypeRefs.Get(uint32(id))
	r.State = ast.Patched
	r.Definition = target
	return id
}

func TestOf_PrimitiveTable(t *testing.T) {
	store := ast.NewStore(nil)

	i16 := store.NewPrimitive(ast.PrimUInt16)
	encoding.Patch(store)
	if got := encoding.Of(store, i16); got != ast.EncodingSlice2 {
		t.Fatalf("uint16 should be Slice2-only, got %v", got)
	}

	i32 := store.NewPrimitive(ast.PrimInt32)
	if got := encoding.Of(store, i32); got != ast.EncodingBoth {
		t.Fatalf("int32 should support both encodings, got %v", got)
	}

	anyClass := store.NewPrimitive(ast.PrimAnyClass)
	if got := encoding.Of(store, anyClass); got != ast.EncodingSlice1 {
		t.Fatalf("AnyClass should be Slice1-only, got %v", got)
	}
}

func TestPatch_ClassRestrictedToSlice1(t *testing.T) {
	store := ast.NewStore(nil)

	_, _, cType := store.NewClass(ast.Class{Identifier: "C"})
	encoding.Patch(store)

	if got := encoding.Of(store, cType); got != ast.EncodingSlice1 {
		t.Fatalf("class should only support Slice1, got %v", got)
	}
}

func TestPatch_ExceptionWithClassBaseRestrictedToSlice1(t *testing.T) {
	store := ast.NewStore(nil)

	_, _, cType := store.NewClass(ast.Class{Identifier: "C"})
	baseRef := patchedRef(store, cType, false)
	_, _, eType := store.NewException(ast.Exception{Identifier: "E", Base: baseRef})

	encoding.Patch(store)

	if got := encoding.Of(store, eType); got != ast.EncodingSlice1 {
		t.Fatalf("exception deriving from a class should only support Slice1, got %v", got)
	}
}

func TestPatch_StructWithOptionalNonPrimitiveFieldDropsSlice1(t *testing.T) {
	store := ast.NewStore(nil)

	_, _, innerType := store.NewStruct(ast.Struct{Identifier: "Inner"})
	fieldRef := patchedRef(store, innerType, true)
	fieldID := store.NewField(ast.Field{Identifier: "f", DataType: fieldRef})

	_, _, outerType := store.NewStruct(ast.Struct{Identifier: "Outer", Fields: []ast.FieldID{fieldID}})

	encoding.Patch(store)

	if got := encoding.Of(store, outerType); got.Has(ast.EncodingSlice1) {
		t.Fatalf("optional non-primitive field should disable Slice1, got %v", got)
	}
	if !encoding.Of(store, outerType).Has(ast.EncodingSlice2) {
		t.Fatalf("Slice2 should remain supported")
	}
}

func TestPatch_StructWithOptionalAnyClassFieldKeepsSlice1(t *testing.T) {
	store := ast.NewStore(nil)

	anyClass := store.NewPrimitive(ast.PrimAnyClass)
	fieldRef := patchedRef(store, anyClass, true)
	fieldID := store.NewField(ast.Field{Identifier: "f", DataType: fieldRef})

	_, _, outerType := store.NewStruct(ast.Struct{Identifier: "Outer", Fields: []ast.FieldID{fieldID}})

	encoding.Patch(store)

	if !encoding.Of(store, outerType).Has(ast.EncodingSlice1) {
		t.Fatalf("optional AnyClass field is exempt from the Slice1 restriction")
	}
}

func TestCheckFile_ReportsUnsupportedType(t *testing.T) {
	store := ast.NewStore(nil)

	i16 := store.NewPrimitive(ast.PrimUInt16)
	ref := patchedRef(store, i16, false)
	encoding.Patch(store)

	unit := &ast.CompilationUnit{EncodingDeclared: true, Encoding: ast.EncodingSlice1}
	store.AddUnit(unit)

	bag := diag.NewBag(8)
	encoding.CheckFile(store, unit, &diag.BagReporter{Bag: bag})

	if !bag.HasErrors() || bag.Items()[0].Code != diag.SemUnsupportedType {
		t.Fatalf("expected SemUnsupportedType, got %v", bag.Items())
	}
	_ = ref
}

func TestCheckFile_AllowsSupportedType(t *testing.T) {
	store := ast.NewStore(nil)

	i32 := store.NewPrimitive(ast.PrimInt32)
	patchedRef(store, i32, false)
	encoding.Patch(store)

	unit := &ast.CompilationUnit{EncodingDeclared: true, Encoding: ast.EncodingSlice1}
	store.AddUnit(unit)

	bag := diag.NewBag(8)
	encoding.CheckFile(store, unit, &diag.BagReporter{Bag: bag})

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
}
