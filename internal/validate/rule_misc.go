package validate

import (
	"fmt"

	"slicec/internal/ast"
	"slicec/internal/diag"
)

// ruleMisc checks the operation-shape constraints that don't belong to any
// of the other rules (spec.md §4.9): at most one streamed parameter and it
// must be the last one, every throws entry must resolve to an exception,
// and a oneway operation may neither return anything nor declare throws.
func ruleMisc(store *ast.Store, reporter diag.Reporter) {
	n := store.Operations.Len()
	for i := uint32(1); i <= n; i++ {
		op := store.Operations.Get(i)
		if op == nil {
			continue
		}
		r := scopedReporter(store, op.Attrs, reporter)
		checkStreamedParameters(store, r, op)
		checkThrows(store, r, op)
		checkOneway(store, r, op)
	}
}

func checkStreamedParameters(store *ast.Store, reporter diag.Reporter, op *ast.Operation) {
	streamed := 0
	last := len(op.Parameters) - 1
	for idx, pid := range op.Parameters {
		p := store.Parameters.Get(uint32(pid))
		if p == nil || !p.IsStreamed {
			continue
		}
		streamed++
		if idx != last {
			diag.ReportError(reporter, diag.SemStreamedParameterNotLast, p.Span,
				fmt.Sprintf("streamed parameter %q must be the last parameter of %q", p.Identifier, op.Identifier)).Emit()
		}
	}
	if streamed > 1 {
		diag.ReportError(reporter, diag.SemTooManyStreamedParameters, op.Span,
			fmt.Sprintf("operation %q declares %d streamed parameters, at most one is allowed", op.Identifier, streamed)).Emit()
	}
}

func checkThrows(store *ast.Store, reporter diag.Reporter, op *ast.Operation) {
	for _, tid := range op.Throws {
		ref := store.TypeRefs.Get(uint32(tid))
		if ref == nil || ref.State != ast.Patched {
			continue // unresolved already reported by internal/resolver
		}
		if _, ok := store.AsException(ref.Definition); !ok {
			diag.ReportError(reporter, diag.SemThrowsTargetNotException, ref.Span,
				fmt.Sprintf("%q in %q's throws clause is not an exception", ref.Identifier, op.Identifier)).Emit()
		}
	}
}

func checkOneway(store *ast.Store, reporter diag.Reporter, op *ast.Operation) {
	if !op.IsOneway {
		return
	}
	if len(op.ReturnMembers) > 0 {
		diag.ReportError(reporter, diag.SemOnewayMustNotReturn, op.Span,
			fmt.Sprintf("oneway operation %q must not return anything", op.Identifier)).Emit()
	}
	if len(op.Throws) > 0 {
		diag.ReportError(reporter, diag.SemOnewayMustNotThrow, op.Span,
			fmt.Sprintf("oneway operation %q must not declare a throws clause", op.Identifier)).Emit()
	}
}
