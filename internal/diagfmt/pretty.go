// Package diagfmt renders a *diag.Bag for a human or a machine
// (SPEC_FULL.md §5), grounded on the teacher's internal/diagfmt: the same
// path:line:col header, colored severity/code, source context lines
// (PrettyOpts.Context above and below the primary line, default 1) with a
// caret underline, and an optional JSON form. This package is driver-side,
// not part of CORE — internal/compiler never imports it.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"slicec/internal/diag"
	"slicec/internal/source"
)

// Pretty writes bag.Items() (call bag.Sort() first for deterministic
// order) as human-readable source snippets to w.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	context := opts.Context
	if context <= 0 {
		context = 1
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}

		startLC, endLC := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		path := formatPath(f, opts.PathMode, fs.BaseDir())

		var sevColored string
		switch d.Severity {
		case diag.SevError:
			sevColored = errorColor.Sprint(d.Severity.String())
		case diag.SevWarning:
			sevColored = warningColor.Sprint(d.Severity.String())
		default:
			sevColored = infoColor.Sprint(d.Severity.String())
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pathColor.Sprint(path), startLC.Line, startLC.Col,
			sevColored, codeColor.Sprint(d.Code.ID()), d.Message)

		lo := uint32(1)
		if startLC.Line > uint32(context) {
			lo = startLC.Line - uint32(context)
		}
		hi := startLC.Line + uint32(context)

		for line := lo; line <= hi; line++ {
			text := f.GetLine(line)
			if text == "" && line != startLC.Line {
				continue
			}
			fmt.Fprintf(w, "%4d | %s\n", lineNumColor.Sprint(line), text)
			if line == startLC.Line {
				underline := caretLine(text, startLC.Col, endLC.Col, startLC.Line, endLC.Line)
				fmt.Fprintln(w, "       "+underlineColor.Sprint(underline))
			}
		}

		if opts.ShowNotes {
			for _, note := range d.Notes {
				nf := fs.Get(note.Span.File)
				noteLC, _ := fs.Resolve(note.Span)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
					formatPath(nf, opts.PathMode, fs.BaseDir()), noteLC.Line, noteLC.Col, note.Msg)
			}
		}
	}
}

func caretLine(text string, startCol, endCol, startLine, endLine uint32) string {
	if endLine > startLine {
		endCol = uint32(len([]rune(text))) + 1
	}
	startVisual := runewidth.StringWidth(string([]rune(text)[:min32(startCol-1, uint32(len([]rune(text))))]))
	span := int(endCol) - int(startCol)
	if span < 1 {
		span = 1
	}
	var b strings.Builder
	for i := 0; i < startVisual; i++ {
		b.WriteByte(' ')
	}
	for i := 0; i < span; i++ {
		if i == span-1 {
			b.WriteByte('^')
		} else {
			b.WriteByte('~')
		}
	}
	return b.String()
}

func min32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func formatPath(f *source.File, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", baseDir)
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", baseDir)
	}
}

// diagnosticJSON is the wire shape for JSON output, one entry per
// diagnostic; kept separate from diag.Diagnostic so the sink's internal
// representation can evolve without breaking consumers of this format.
type diagnosticJSON struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Path     string     `json:"path"`
	Line     uint32     `json:"line"`
	Column   uint32     `json:"column"`
	Notes    []noteJSON `json:"notes,omitempty"`
}

type noteJSON struct {
	Message string `json:"message"`
	Path    string `json:"path"`
	Line    uint32 `json:"line"`
	Column  uint32 `json:"column"`
}

// JSON writes bag.Items() as a JSON array to w, one object per
// diagnostic, for tooling that consumes machine-readable output.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]diagnosticJSON, 0, bag.Len())
	for _, d := range bag.Items() {
		lc, _ := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		entry := diagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Path:     formatPath(f, opts.PathMode, fs.BaseDir()),
			Line:     lc.Line,
			Column:   lc.Col,
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				nlc, _ := fs.Resolve(n.Span)
				nf := fs.Get(n.Span.File)
				entry.Notes = append(entry.Notes, noteJSON{
					Message: n.Msg,
					Path:    formatPath(nf, opts.PathMode, fs.BaseDir()),
					Line:    nlc.Line,
					Column:  nlc.Col,
				})
			}
		}
		out = append(out, entry)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
