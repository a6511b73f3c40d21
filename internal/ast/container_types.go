package ast

import "slicec/internal/source"

// Sequence is an ordered, homogeneous collection type, e.g. `sequence<int32>`.
type Sequence struct {
	Element TypeRefID
	Span    source.Span
}

// Dictionary is a keyed collection type, e.g. `dictionary<string, int32>`.
type Dictionary struct {
	Key   TypeRefID
	Value TypeRefID
	Span  source.Span
}
