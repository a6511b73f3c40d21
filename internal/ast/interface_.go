package ast

import "slicec/internal/source"

// Interface is a reference type declaring a set of remotely invocable
// operations, optionally extending other interfaces.
type Interface struct {
	Identifier         string
	Bases              []TypeRefID
	Operations         []OperationID
	Attrs              []AttrID
	Doc                DocCommentID
	Scope              ScopeID
	SupportedEncodings EncodingSet
	Span               source.Span
}

// Operation is a single remotely invocable member of an Interface.
type Operation struct {
	Identifier      string
	Parameters      []ParameterID
	ReturnMembers   []ParameterID
	Throws          []TypeRefID
	IsIdempotent    bool
	IsOneway        bool
	Attrs           []AttrID
	Doc             DocCommentID
	Parent          InterfaceID
	Span            source.Span
}

// Parameter is a single input or return member of an Operation.
type Parameter struct {
	Identifier string
	DataType   TypeRefID
	Tag        *int32
	IsStreamed bool
	IsReturned bool
	Parent     OperationID
	Span       source.Span
}
