package validate

import (
	"fmt"
	"strings"

	"slicec/internal/ast"
	"slicec/internal/diag"
)

// ruleComments checks an operation's doc comment tags against its actual
// signature: an @param naming a parameter that doesn't exist, or a @throws
// naming an exception the operation doesn't declare, is almost always a
// copy-paste mistake rather than intentional documentation, so both are
// reported as warnings (spec.md §4.9). @returns and @see carry no checkable
// target and are left alone.
func ruleComments(store *ast.Store, reporter diag.Reporter) {
	ast.Walk(store, &commentsVisitor{store: store, reporter: reporter})
}

type commentsVisitor struct {
	ast.NopVisitor
	store    *ast.Store
	reporter diag.Reporter
}

func (v *commentsVisitor) VisitOperation(s *ast.Store, _ ast.OperationID, op *ast.Operation) {
	if !op.Doc.IsValid() {
		return
	}
	doc := v.store.DocComments.Get(uint32(op.Doc))
	if doc == nil {
		return
	}
	r := scopedReporter(v.store, op.Attrs, v.reporter)

	paramNames := make(map[string]bool, len(op.Parameters))
	for _, pid := range op.Parameters {
		p := v.store.Parameters.Get(uint32(pid))
		paramNames[p.Identifier] = true
	}
	throwsNames := make(map[string]bool, len(op.Throws))
	for _, tid := range op.Throws {
		ref := v.store.TypeRefs.Get(uint32(tid))
		if ref != nil {
			throwsNames[simpleName(ref.Identifier)] = true
		}
	}

	for _, tag := range doc.Tags {
		switch tag.Kind {
		case ast.DocTagParam:
			if !paramNames[tag.Target] {
				diag.ReportWarning(r, diag.SemDocUnknownParam, tag.Span,
					fmt.Sprintf("@param %q does not name a parameter of %q", tag.Target, op.Identifier)).Emit()
			}
		case ast.DocTagThrows:
			if !throwsNames[simpleName(tag.Target)] {
				diag.ReportWarning(r, diag.SemDocUnknownThrows, tag.Span,
					fmt.Sprintf("@throws %q is not declared in %q's throws clause", tag.Target, op.Identifier)).Emit()
			}
		}
	}
}

// simpleName strips any "::"-qualified prefix, so a @throws tag written
// against either the short or fully-qualified exception name matches.
func simpleName(id string) string {
	id = strings.TrimPrefix(id, "::")
	if i := strings.LastIndex(id, "::"); i >= 0 {
		return id[i+2:]
	}
	return id
}
