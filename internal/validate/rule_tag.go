package validate

import (
	"fmt"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
)

// ruleTag checks every tagged field or parameter: its type must be either
// optional or a class, and no two tags may collide within the same
// container (spec.md §4.9). Wire ordering by tag value is a codec concern,
// not something this rule needs to check: any source order is valid.
func ruleTag(store *ast.Store, reporter diag.Reporter) {
	n := store.Structs.Len()
	for i := uint32(1); i <= n; i++ {
		if st := store.Structs.Get(i); st != nil {
			checkTaggedFields(store, scopedReporter(store, st.Attrs, reporter), st.Fields)
		}
	}
	n = store.Classes.Len()
	for i := uint32(1); i <= n; i++ {
		if c := store.Classes.Get(i); c != nil {
			checkTaggedFields(store, scopedReporter(store, c.Attrs, reporter), c.Fields)
		}
	}
	n = store.Exceptions.Len()
	for i := uint32(1); i <= n; i++ {
		if e := store.Exceptions.Get(i); e != nil {
			checkTaggedFields(store, scopedReporter(store, e.Attrs, reporter), e.Fields)
		}
	}

	n = store.Operations.Len()
	for i := uint32(1); i <= n; i++ {
		op := store.Operations.Get(i)
		if op == nil {
			continue
		}
		r := scopedReporter(store, op.Attrs, reporter)
		checkTaggedParameters(store, r, op.Parameters)
		checkTaggedParameters(store, r, op.ReturnMembers)
	}
}

func checkTaggedFields(store *ast.Store, reporter diag.Reporter, fields []ast.FieldID) {
	seen := make(map[int32]*ast.Field)
	for _, fid := range fields {
		f := store.Fields.Get(uint32(fid))
		if f == nil || f.Tag == nil {
			continue
		}
		checkTagType(store, reporter, f.DataType, f.Span, f.Identifier)
		if prior, dup := seen[*f.Tag]; dup {
			diag.ReportError(reporter, diag.SemDuplicateTagValue, f.Span,
				fmt.Sprintf("field %q reuses tag %d already used by %q", f.Identifier, *f.Tag, prior.Identifier)).
				WithNote(prior.Span, "previous use of this tag").Emit()
			continue
		}
		seen[*f.Tag] = f
	}
}

func checkTaggedParameters(store *ast.Store, reporter diag.Reporter, params []ast.ParameterID) {
	seen := make(map[int32]*ast.Parameter)
	for _, pid := range params {
		p := store.Parameters.Get(uint32(pid))
		if p == nil || p.Tag == nil {
			continue
		}
		checkTagType(store, reporter, p.DataType, p.Span, p.Identifier)
		if prior, dup := seen[*p.Tag]; dup {
			diag.ReportError(reporter, diag.SemDuplicateTagValue, p.Span,
				fmt.Sprintf("parameter %q reuses tag %d already used by %q", p.Identifier, *p.Tag, prior.Identifier)).
				WithNote(prior.Span, "previous use of this tag").Emit()
			continue
		}
		seen[*p.Tag] = p
	}
}

func checkTagType(store *ast.Store, reporter diag.Reporter, dt ast.TypeRefID, span source.Span, name string) {
	ref := store.TypeRefs.Get(uint32(dt))
	if ref == nil || ref.State != ast.Patched {
		return // unresolved already reported by internal/resolver
	}
	if ref.IsOptional {
		return
	}
	if _, ok := store.AsClass(ref.Definition); ok {
		return
	}
	diag.ReportError(reporter, diag.SemTagTypeNotOptionalOrClass, span,
		fmt.Sprintf("tagged member %q must be optional or a class", name)).Emit()
}
