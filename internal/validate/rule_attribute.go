package validate

import (
	"fmt"
	"strings"

	"slicec/internal/ast"
	"slicec/internal/diag"
)

// ruleAttribute checks every attached attribute against the catalog in
// internal/ast/attr_catalog.go: the directive must be allowed on the kind of
// entity it is attached to, its argument count must fit the declared arity,
// and any identifier argument must be on the directive's whitelist, if it
// has one. A directive absent from the catalog is a language-mapping
// extension and is retained verbatim without further checks, per spec.md
// §4.9.
func ruleAttribute(store *ast.Store, reporter diag.Reporter) {
	ast.Walk(store, &attributeVisitor{store: store, reporter: reporter})
}

type attributeVisitor struct {
	ast.NopVisitor
	store    *ast.Store
	reporter diag.Reporter
}

func (v *attributeVisitor) VisitModule(s *ast.Store, _ ast.ModuleID, m *ast.Module) {
	v.check(m.Attrs, ast.AttrTargetModule)
}
func (v *attributeVisitor) VisitStruct(s *ast.Store, _ ast.StructID, st *ast.Struct) {
	v.check(st.Attrs, ast.AttrTargetStruct)
}
func (v *attributeVisitor) VisitClass(s *ast.Store, _ ast.ClassID, c *ast.Class) {
	v.check(c.Attrs, ast.AttrTargetClass)
}
func (v *attributeVisitor) VisitException(s *ast.Store, _ ast.ExceptionID, e *ast.Exception) {
	v.check(e.Attrs, ast.AttrTargetException)
}
func (v *attributeVisitor) VisitInterface(s *ast.Store, _ ast.InterfaceID, in *ast.Interface) {
	v.check(in.Attrs, ast.AttrTargetInterface)
}
func (v *attributeVisitor) VisitOperation(s *ast.Store, _ ast.OperationID, op *ast.Operation) {
	v.check(op.Attrs, ast.AttrTargetOperation)
}
func (v *attributeVisitor) VisitField(s *ast.Store, _ ast.FieldID, f *ast.Field) {
	v.check(f.Attrs, ast.AttrTargetField)
}
func (v *attributeVisitor) VisitEnum(s *ast.Store, _ ast.EnumID, en *ast.Enum) {
	v.check(en.Attrs, ast.AttrTargetEnum)
}
func (v *attributeVisitor) VisitEnumerator(s *ast.Store, _ ast.EnumeratorID, ev *ast.Enumerator) {
	v.check(ev.Attrs, ast.AttrTargetEnumerator)
}
func (v *attributeVisitor) VisitCustomType(s *ast.Store, _ ast.CustomTypeID, c *ast.CustomType) {
	v.check(c.Attrs, ast.AttrTargetCustomType)
}
func (v *attributeVisitor) VisitTypeAlias(s *ast.Store, _ ast.TypeAliasID, a *ast.TypeAlias) {
	v.check(a.Attrs, ast.AttrTargetTypeAlias)
}

func (v *attributeVisitor) check(attrs []ast.AttrID, target ast.AttrTargetMask) {
	seen := make(map[string]ast.Attr, len(attrs))
	for _, id := range attrs {
		a := v.store.Attrs.Get(uint32(id))
		if a == nil {
			continue
		}
		name, ok := v.store.Strings.Lookup(a.Directive)
		if !ok {
			continue
		}
		if prior, dup := seen[name]; dup {
			diag.ReportError(v.reporter, diag.SemAttributeDuplicate, a.Span,
				fmt.Sprintf("attribute @%s is already applied here", name)).
				WithNote(prior.Span, "previous occurrence").Emit()
		} else {
			seen[name] = *a
		}

		spec, known := ast.LookupAttr(name)
		if !known {
			continue
		}
		if !spec.Allows(target) {
			diag.ReportError(v.reporter, diag.SemArgumentNotSupported, a.Span,
				fmt.Sprintf("@%s cannot be applied here", name)).Emit()
			continue
		}
		v.checkArity(a, spec)
	}
}

func (v *attributeVisitor) checkArity(a *ast.Attr, spec ast.AttrSpec) {
	n := len(a.Args)
	if n < spec.Arity.Min {
		diag.ReportError(v.reporter, diag.SemMissingRequiredArgument, a.Span,
			fmt.Sprintf("@%s requires at least %d argument(s), got %d", spec.Name, spec.Arity.Min, n)).Emit()
		return
	}
	if spec.Arity.Max >= 0 && n > spec.Arity.Max {
		diag.ReportError(v.reporter, diag.SemTooManyArguments, a.Span,
			fmt.Sprintf("@%s accepts at most %d argument(s), got %d", spec.Name, spec.Arity.Max, n)).Emit()
		return
	}
	for _, arg := range a.Args {
		if arg.Kind != ast.AttrArgIdent {
			continue
		}
		if !spec.IdentArgAllowed(arg.Text) {
			diag.ReportError(v.reporter, diag.SemArgumentNotSupported, arg.Span,
				fmt.Sprintf("%q is not a recognized argument for @%s", arg.Text, spec.Name)).Emit()
		}
	}
	if spec.Name == "allow" {
		v.checkAllowCodes(a)
	}
}

// checkAllowCodes flags an @allow argument that names no known diagnostic
// code, so a typo in a suppression list is visible rather than silently
// doing nothing. Codes match case-sensitively; an argument that matches a
// code once lowercased gets a note naming the lowercase spelling.
func (v *attributeVisitor) checkAllowCodes(a *ast.Attr) {
	for _, arg := range a.Args {
		if arg.Kind != ast.AttrArgIdent {
			continue
		}
		if !anyCodeAllowed(diag.NewAllowSet(arg.Text)) {
			b := diag.ReportError(v.reporter, diag.SemInvalidWarningCode, arg.Span,
				fmt.Sprintf("%q is not a recognized diagnostic code for @allow", arg.Text))
			if lower := strings.ToLower(arg.Text); anyCodeAllowed(diag.NewAllowSet(lower)) {
				b = b.WithNote(arg.Span, fmt.Sprintf("codes are case-sensitive; did you mean %q?", lower))
			}
			b.Emit()
		}
	}
}

// anyCodeAllowed reports whether probe suppresses at least one code, i.e.
// whether its single name was recognized by diag.NewAllowSet.
func anyCodeAllowed(probe *diag.AllowSet) bool {
	for _, c := range []diag.Code{
		diag.SemRedefinition, diag.SemUnresolved, diag.SemUnsupportedType,
		diag.SemDuplicateEnumeratorValue, diag.SemShadowsInheritedMember,
		diag.SemDeprecatedUsage, diag.SemDocUnknownLink,
	} {
		if probe.Allows(c) {
			return true
		}
	}
	return false
}
