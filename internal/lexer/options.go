package lexer

import (
	"slicec/internal/diag"
	"slicec/internal/source"
)

// Options configures a Lexer instance.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) reportLex(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
