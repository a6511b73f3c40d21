package ast

import "slicec/internal/source"

// Struct is a value type, either "sliced" (default) or compact (declared with
// the `compact` keyword).
type Struct struct {
	Identifier         string
	IsCompact          bool
	Fields             []FieldID
	Attrs              []AttrID
	Doc                DocCommentID
	Scope              ScopeID
	SupportedEncodings EncodingSet
	Span               source.Span
}
