package compiler

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
	"slicec/internal/symbols"
)

// CompilationData is the read-only product a code generator consumes
// (spec.md §6.2): the patched AST, the file set backing every span, and
// every diagnostic collected along the pipeline. Every handle reachable
// from it is non-owning and tied to this value's lifetime.
type CompilationData struct {
	AST   *ast.Store
	Files *source.FileSet
	Diags *diag.Bag

	table *symbols.Table
}

// FindElement looks up a fully scoped name (e.g. "Foo::Bar") in the
// compilation's symbol tables and returns it as T, if present and of that
// concrete type. It checks the type table first, then the entity table, so
// it finds both type-producing definitions (Struct, Enum, ...) and
// entities that are not types (Operation, Enumerator, ...).
func FindElement[T any](data *CompilationData, scopedName string) (T, bool) {
	var zero T
	if data == nil || data.table == nil {
		return zero, false
	}
	if tid, ok := data.table.TypeTable[scopedName]; ok {
		if v, ok := data.AST.Type(tid).(T); ok {
			return v, true
		}
	}
	if did, ok := data.table.EntityTable[scopedName]; ok {
		if v, ok := data.AST.Def(did).(T); ok {
			return v, true
		}
	}
	return zero, false
}
