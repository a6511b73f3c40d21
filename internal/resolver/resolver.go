// Package resolver patches every Unpatched TypeRef in an ast.Store to a
// concrete ast.TypeID, given the name tables built by internal/symbols.
package resolver

import (
	"strings"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
	"slicec/internal/symbols"
)

// Patch walks every TypeRef in store, resolving each Unpatched one against
// table. A reference that cannot be resolved is left Unpatched and reported
// as diag.SemUnresolved.
func Patch(store *ast.Store, table *symbols.Table, reporter diag.Reporter) {
	n := store.TypeRefs.Len()
	for i := uint32(1); i <= n; i++ {
		ref := store.TypeRefs.Get(i)
		if ref == nil || ref.State == ast.Patched {
			continue
		}
		id, ok := resolve(table, ref)
		if !ok {
			if reporter != nil {
				reporter.Report(diag.SemUnresolved, diag.SevError, ref.Span,
					"unresolved type reference \""+ref.Identifier+"\"", nil)
			}
			continue
		}
		ref.State = ast.Patched
		ref.Definition = id
	}
}

func resolve(table *symbols.Table, ref *ast.TypeRef) (ast.TypeID, bool) {
	if ref.Scope.Absolute {
		id, ok := table.TypeTable[strings.TrimPrefix(ref.Identifier, "::")]
		return id, ok
	}
	segs := segmentStrings(table.Strings, ref.Scope.ModuleScope)
	for i := len(segs); i >= 0; i-- {
		candidate := ref.Identifier
		if i > 0 {
			candidate = strings.Join(segs[:i], "::") + "::" + ref.Identifier
		}
		if id, ok := table.TypeTable[candidate]; ok {
			return id, true
		}
	}
	return ast.TypeID{}, false
}

func segmentStrings(interner *source.Interner, ids []source.StringID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := interner.Lookup(id); ok {
			out = append(out, s)
		}
	}
	return out
}
