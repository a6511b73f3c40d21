// Package validate runs the fixed, ordered pipeline of semantic rules that
// the earlier phases (parse, resolve, cycle, encoding) leave for last: rules
// that look at a whole container's children at once, or whose diagnosis only
// makes sense once every TypeRef is patched. A rule never mutates the AST,
// only pushes diagnostics through the Reporter it is handed.
package validate

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
)

// Run executes every built-in rule against store, in the fixed order
// required by spec.md §4.9: attribute, comments, dictionary, enum,
// identifier, miscellaneous, sequence, tag. Order between files is whatever
// order their definitions were appended to store by the parser, i.e. input
// order.
func Run(store *ast.Store, reporter diag.Reporter) {
	ruleAttribute(store, reporter)
	ruleComments(store, reporter)
	ruleDictionary(store, reporter)
	ruleEnum(store, reporter)
	ruleIdentifier(store, reporter)
	ruleMisc(store, reporter)
	ruleSequence(store, reporter)
	ruleTag(store, reporter)
}

// scopedReporter wraps reporter in a diag.FilteringReporter honoring any
// `allow(code...)` attribute present on attrs, so a rule's own diagnostics
// about the entity attrs are attached to are suppressed the same way the
// teacher's lint-allow attributes suppress a linter's own findings.
func scopedReporter(store *ast.Store, attrs []ast.AttrID, reporter diag.Reporter) diag.Reporter {
	var names []string
	for _, id := range attrs {
		a := store.Attrs.Get(uint32(id))
		if a == nil {
			continue
		}
		name, ok := store.Strings.Lookup(a.Directive)
		if !ok || name != "allow" {
			continue
		}
		for _, arg := range a.Args {
			if arg.Kind == ast.AttrArgIdent {
				names = append(names, arg.Text)
			}
		}
	}
	if len(names) == 0 {
		return reporter
	}
	return diag.NewFilteringReporter(reporter, diag.NewAllowSet(names...))
}

// attrsOf returns the Attrs slice for whatever def a DefID refers to, for
// code that has only a DefID rather than the concrete node. No rule calls it.
func attrsOf(store *ast.Store, id ast.DefID) []ast.AttrID {
	switch n := store.Def(id).(type) {
	case *ast.Module:
		return n.Attrs
	case *ast.Struct:
		return n.Attrs
	case *ast.Class:
		return n.Attrs
	case *ast.Exception:
		return n.Attrs
	case *ast.Interface:
		return n.Attrs
	case *ast.Enum:
		return n.Attrs
	case *ast.CustomType:
		return n.Attrs
	case *ast.TypeAlias:
		return n.Attrs
	default:
		return nil
	}
}
