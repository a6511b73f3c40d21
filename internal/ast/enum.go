package ast

import "slicec/internal/source"

// Enum is an enumeration of named integer values.
type Enum struct {
	Identifier         string
	Underlying         TypeRefID // zero value if omitted; defaults resolved by validation
	IsUnchecked         bool
	Enumerators         []EnumeratorID
	Attrs               []AttrID
	Doc                 DocCommentID
	Scope               ScopeID
	SupportedEncodings  EncodingSet
	Span                source.Span
}

// EnumValue is an enumerator's value, distinguishing an explicit literal from
// one implicitly assigned (previous value + 1, or 0 for the first member).
type EnumValue struct {
	Explicit bool
	Value    int64
}

// Enumerator is a single named member of an Enum.
type Enumerator struct {
	Identifier string
	Value      EnumValue
	Attrs      []AttrID
	Doc        DocCommentID
	Parent     EnumID
	Span       source.Span
}
