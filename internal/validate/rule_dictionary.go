package validate

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
)

// ruleDictionary checks every dictionary type in store, however deeply
// nested, since each one is its own arena entry regardless of where it is
// used (spec.md §4.9): the key must be non-optional, and its type must be
// bool, a non-float integer primitive, string, an enum, a custom type, or a
// compact struct whose fields are themselves valid key types.
func ruleDictionary(store *ast.Store, reporter diag.Reporter) {
	n := store.Dictionaries.Len()
	for i := uint32(1); i <= n; i++ {
		d := store.Dictionaries.Get(i)
		if d == nil {
			continue
		}
		ref := store.TypeRefs.Get(uint32(d.Key))
		if ref == nil || ref.State != ast.Patched {
			continue // unresolved key already reported by internal/resolver
		}
		if ref.IsOptional {
			diag.ReportError(reporter, diag.SemKeyMustBeNonOptional, ref.Span,
				"a dictionary key type must not be optional").Emit()
			continue
		}
		if st, ok := store.AsStruct(ref.Definition); ok && !st.IsCompact {
			diag.ReportError(reporter, diag.SemStructKeyMustBeCompact, ref.Span,
				"a struct used as a dictionary key must be declared compact").Emit()
			continue
		}
		if !isValidKeyType(store, ref.Definition, nil) {
			diag.ReportError(reporter, diag.SemKeyTypeNotSupported, ref.Span,
				"this type is not supported as a dictionary key").Emit()
		}
	}
}
