package ast

import "slicec/internal/source"

// Exception is a value type usable only in an operation's throws clause,
// optionally inheriting a single base exception.
type Exception struct {
	Identifier         string
	Base               TypeRefID
	Fields             []FieldID
	Attrs              []AttrID
	Doc                DocCommentID
	Scope              ScopeID
	SupportedEncodings EncodingSet
	Span               source.Span
}
