package ast

import "slicec/internal/source"

// RefState discriminates whether a TypeRef has been resolved yet.
type RefState uint8

const (
	// Unpatched means the reference still holds only the parsed identifier text.
	Unpatched RefState = iota
	// Patched means the resolver has set Definition to a concrete TypeID.
	Patched
)

// TypeRef is a use-site of a type: a sequence element, dictionary key or
// value, field/parameter data type, typealias underlying type, or a class
// base/interface bases entry. Constructed in the Unpatched state by the
// parser and moved to Patched by internal/resolver.
type TypeRef struct {
	State      RefState
	Identifier string // as written, e.g. "Foo" or "Bar::Baz" or "::Bar::Baz"
	Definition TypeID // valid only when State == Patched
	IsOptional bool
	Attrs      []AttrID
	Scope      ScopeRef
	Span       source.Span
}

// ScopeRef captures the two lookup paths active at a TypeRef's use site, per
// the module-scope / parser-scope split of the node model.
type ScopeRef struct {
	ModuleScope []source.StringID
	ParserScope []source.StringID
	Absolute    bool
}

// IsResolved reports whether the reference has been patched to a concrete type.
func (r *TypeRef) IsResolved() bool {
	return r.State == Patched && r.Definition.IsValid()
}
