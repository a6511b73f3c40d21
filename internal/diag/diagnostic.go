package diag

import "slicec/internal/source"

// Note provides auxiliary context for a diagnostic message, such as the
// location of a prior definition in a redefinition error.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic captures a single issue along with optional notes.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
