package validate

import (
	"fmt"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
)

// ruleIdentifier checks that no two fields of a struct, class or exception,
// no two operations of an interface, and no two enumerators of an enum share
// an identifier (spec.md §4.9). symbols.Table never indexes Fields; it does
// index operations and enumerators under their qualified names, so a
// duplicate of either is also reported there. It also checks that a struct/class/exception field, or an
// interface operation, does not shadow a member already declared by a base
// type.
func ruleIdentifier(store *ast.Store, reporter diag.Reporter) {
	n := store.Structs.Len()
	for i := uint32(1); i <= n; i++ {
		if st := store.Structs.Get(i); st != nil {
			checkFieldNames(store, scopedReporter(store, st.Attrs, reporter), st.Fields, nil)
		}
	}

	n = store.Classes.Len()
	for i := uint32(1); i <= n; i++ {
		c := store.Classes.Get(i)
		if c == nil {
			continue
		}
		r := scopedReporter(store, c.Attrs, reporter)
		inherited := inheritedClassFields(store, c.Base)
		checkFieldNames(store, r, c.Fields, inherited)
	}

	n = store.Exceptions.Len()
	for i := uint32(1); i <= n; i++ {
		e := store.Exceptions.Get(i)
		if e == nil {
			continue
		}
		r := scopedReporter(store, e.Attrs, reporter)
		inherited := inheritedExceptionFields(store, e.Base)
		checkFieldNames(store, r, e.Fields, inherited)
	}

	n = store.Interfaces.Len()
	for i := uint32(1); i <= n; i++ {
		in := store.Interfaces.Get(i)
		if in == nil {
			continue
		}
		r := scopedReporter(store, in.Attrs, reporter)
		inherited := inheritedOperationNames(store, in.Bases, make(map[ast.TypeID]bool))
		checkOperationNames(store, r, in.Operations, inherited)
	}

	n = store.Enums.Len()
	for i := uint32(1); i <= n; i++ {
		en := store.Enums.Get(i)
		if en == nil {
			continue
		}
		r := scopedReporter(store, en.Attrs, reporter)
		checkEnumeratorNames(store, r, en.Enumerators)
	}
}

func checkFieldNames(store *ast.Store, reporter diag.Reporter, fields []ast.FieldID, inherited map[string]source.Span) {
	seen := make(map[string]*ast.Field, len(fields))
	for _, fid := range fields {
		f := store.Fields.Get(uint32(fid))
		if f == nil {
			continue
		}
		if prior, dup := seen[f.Identifier]; dup {
			diag.ReportError(reporter, diag.SemRedefinition, f.Span,
				fmt.Sprintf("field %q is already declared in this type", f.Identifier)).
				WithNote(prior.Span, "previous declaration").Emit()
			continue
		}
		seen[f.Identifier] = f
		if span, shadows := inherited[f.Identifier]; shadows {
			diag.ReportWarning(reporter, diag.SemShadowsInheritedMember, f.Span,
				fmt.Sprintf("field %q shadows a member inherited from a base type", f.Identifier)).
				WithNote(span, "inherited member declared here").Emit()
		}
	}
}

func checkOperationNames(store *ast.Store, reporter diag.Reporter, ops []ast.OperationID, inherited map[string]source.Span) {
	seen := make(map[string]*ast.Operation, len(ops))
	for _, oid := range ops {
		op := store.Operations.Get(uint32(oid))
		if op == nil {
			continue
		}
		if prior, dup := seen[op.Identifier]; dup {
			diag.ReportError(reporter, diag.SemRedefinition, op.Span,
				fmt.Sprintf("operation %q is already declared in this interface", op.Identifier)).
				WithNote(prior.Span, "previous declaration").Emit()
			continue
		}
		seen[op.Identifier] = op
		if span, shadows := inherited[op.Identifier]; shadows {
			diag.ReportWarning(reporter, diag.SemShadowsInheritedMember, op.Span,
				fmt.Sprintf("operation %q shadows an operation inherited from a base interface", op.Identifier)).
				WithNote(span, "inherited operation declared here").Emit()
		}
	}
}

// inheritedClassFields walks a class's base chain, collecting each
// identifier's first (most-derived) declaring span.
func inheritedClassFields(store *ast.Store, base ast.TypeRefID) map[string]source.Span {
	out := make(map[string]source.Span)
	visited := make(map[ast.TypeID]bool)
	for base.IsValid() {
		ref := store.TypeRefs.Get(uint32(base))
		if ref == nil || ref.State != ast.Patched || visited[ref.Definition] {
			break
		}
		visited[ref.Definition] = true
		c, ok := store.AsClass(ref.Definition)
		if !ok {
			break
		}
		for _, fid := range c.Fields {
			f := store.Fields.Get(uint32(fid))
			if f == nil {
				continue
			}
			if _, exists := out[f.Identifier]; !exists {
				out[f.Identifier] = f.Span
			}
		}
		base = c.Base
	}
	return out
}

// inheritedExceptionFields is inheritedClassFields for the exception
// hierarchy, which follows the same single-base shape.
func inheritedExceptionFields(store *ast.Store, base ast.TypeRefID) map[string]source.Span {
	out := make(map[string]source.Span)
	visited := make(map[ast.TypeID]bool)
	for base.IsValid() {
		ref := store.TypeRefs.Get(uint32(base))
		if ref == nil || ref.State != ast.Patched || visited[ref.Definition] {
			break
		}
		visited[ref.Definition] = true
		e, ok := store.AsException(ref.Definition)
		if !ok {
			break
		}
		for _, fid := range e.Fields {
			f := store.Fields.Get(uint32(fid))
			if f == nil {
				continue
			}
			if _, exists := out[f.Identifier]; !exists {
				out[f.Identifier] = f.Span
			}
		}
		base = e.Base
	}
	return out
}

// inheritedOperationNames walks an interface's (possibly multiple) base
// interfaces, collecting every operation name they declare, directly or
// transitively. visited guards against revisiting a diamond-shared base.
func inheritedOperationNames(store *ast.Store, bases []ast.TypeRefID, visited map[ast.TypeID]bool) map[string]source.Span {
	out := make(map[string]source.Span)
	for _, baseRef := range bases {
		ref := store.TypeRefs.Get(uint32(baseRef))
		if ref == nil || ref.State != ast.Patched || visited[ref.Definition] {
			continue
		}
		visited[ref.Definition] = true
		in, ok := store.AsInterface(ref.Definition)
		if !ok {
			continue
		}
		for _, oid := range in.Operations {
			op := store.Operations.Get(uint32(oid))
			if op == nil {
				continue
			}
			if _, exists := out[op.Identifier]; !exists {
				out[op.Identifier] = op.Span
			}
		}
		for name, span := range inheritedOperationNames(store, in.Bases, visited) {
			if _, exists := out[name]; !exists {
				out[name] = span
			}
		}
	}
	return out
}

func checkEnumeratorNames(store *ast.Store, reporter diag.Reporter, evs []ast.EnumeratorID) {
	seen := make(map[string]*ast.Enumerator, len(evs))
	for _, evID := range evs {
		ev := store.Enumerators.Get(uint32(evID))
		if ev == nil {
			continue
		}
		if prior, dup := seen[ev.Identifier]; dup {
			diag.ReportError(reporter, diag.SemRedefinition, ev.Span,
				fmt.Sprintf("enumerator %q is already declared in this enum", ev.Identifier)).
				WithNote(prior.Span, "previous declaration").Emit()
			continue
		}
		seen[ev.Identifier] = ev
	}
}
