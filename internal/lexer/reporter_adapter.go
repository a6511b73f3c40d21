package lexer

import "slicec/internal/diag"

// ReporterAdapter adapts a diag.Bag for use as the lexer's diagnostic sink.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a diag.Reporter that forwards diagnostics into the adapter's bag.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	return &diag.BagReporter{Bag: r.Bag}
}
