package ast

import "slicec/internal/source"

// Class is a reference type, optionally inheriting a single base class and
// carrying a Slice1 compact id for wire identification.
type Class struct {
	Identifier         string
	CompactID          *int32 // nil when not assigned
	Base               TypeRefID
	Fields             []FieldID
	Attrs              []AttrID
	Doc                DocCommentID
	Scope              ScopeID
	SupportedEncodings EncodingSet
	Span               source.Span
}
