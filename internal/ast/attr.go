package ast

import "slicec/internal/source"

// Attr is a single `[directive(args...)]` or file-level `[[directive(args...)]]`
// attribute attached to an entity or to a file.
type Attr struct {
	Directive source.StringID
	Args      []AttrArg
	FileLevel bool
	Span      source.Span
}

// AttrArgKind discriminates the shape of one attribute argument.
type AttrArgKind uint8

const (
	AttrArgInvalid AttrArgKind = iota
	AttrArgIdent               // bare identifier, e.g. Compact in format(Compact)
	AttrArgString              // quoted string, e.g. "message" in deprecated("message")
)

// AttrArg is one comma-separated argument inside a directive's parens.
type AttrArg struct {
	Kind AttrArgKind
	Text string
	Span source.Span
}
