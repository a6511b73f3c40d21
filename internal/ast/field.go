package ast

import "slicec/internal/source"

// Field is a named, typed member of a struct, class, or exception.
type Field struct {
	Identifier string
	DataType   TypeRefID
	Tag        *int32 // nil when untagged
	Attrs      []AttrID
	Doc        DocCommentID
	Parent     DefID
	Span       source.Span
}
