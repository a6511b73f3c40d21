package ast

import "slicec/internal/source"

// TypeAlias is a named synonym for another type, transparent to validation
// (it does not introduce containment edges of its own beyond its underlying
// type, per the cycle detector's edge table).
type TypeAlias struct {
	Identifier string
	Underlying TypeRefID
	Attrs      []AttrID
	Doc        DocCommentID
	Scope      ScopeID
	Span       source.Span
}

// CustomType is an opaque type whose representation is defined by the
// target language mapping; it carries no further structure here.
type CustomType struct {
	Identifier string
	Attrs      []AttrID
	Doc        DocCommentID
	Scope      ScopeID
	Span       source.Span
}
