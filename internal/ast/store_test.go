package ast_test

import (
	"testing"

	"slicec/internal/ast"
	"slicec/internal/source"
)

func TestStoreBuildAndWalk(t *testing.T) {
	s := ast.NewStore(nil)

	i32 := s.NewPrimitive(ast.PrimInt32)
	ref := s.NewTypeRef("int32", false, ast.ScopeRef{}, source.Span{})
	s.TypeRefs.Get(uint32(ref)).State = ast.Patched
	s.TypeRefs.Get(uint32(ref)).Definition = i32

	fieldID := s.NewField(ast.Field{Identifier: "i", DataType: ref})

	_, structDef, _ := s.NewStruct(ast.Struct{
		Identifier: "S",
		IsCompact:  true,
		Fields:     []ast.FieldID{fieldID},
	})

	_, moduleDef := s.NewModule(ast.Module{
		Identifier:  "Test",
		Definitions: []ast.DefID{structDef},
	})

	s.AddUnit(&ast.CompilationUnit{Definitions: []ast.DefID{moduleDef}})
	s.Freeze()

	if !s.Frozen() {
		t.Fatalf("expected store to be frozen")
	}

	var seenStruct, seenField int
	v := &countingVisitor{onStruct: func() { seenStruct++ }, onField: func() { seenField++ }}
	ast.Walk(s, v)

	if seenStruct != 1 || seenField != 1 {
		t.Fatalf("expected to visit 1 struct and 1 field, got struct=%d field=%d", seenStruct, seenField)
	}
}

type countingVisitor struct {
	ast.NopVisitor
	onStruct func()
	onField  func()
}

func (v *countingVisitor) VisitStruct(_ *ast.Store, _ ast.StructID, _ *ast.Struct) { v.onStruct() }
func (v *countingVisitor) VisitField(_ *ast.Store, _ ast.FieldID, _ *ast.Field)    { v.onField() }
