// Package cycle detects unbounded value-type containment cycles among
// Struct fields, Sequence elements, Dictionary keys/values, and TypeAlias
// underlying types. Class, Interface, and Exception references do not
// contribute containment edges: they are reference types, so a cycle through
// one of them is representable on the wire.
package cycle

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
)

type color uint8

const (
	white color = iota
	grey
	black
)

// Detect runs a tri-color DFS over the containment graph and reports one
// diag.SemCycleDetected per cycle found, at the span of the node that
// closes the cycle.
func Detect(store *ast.Store, reporter diag.Reporter) {
	state := make(map[ast.TypeID]color)

	forEachTypeWithEdges(store, func(id ast.TypeID) {
		if state[id] == white {
			dfs(store, id, state, reporter)
		}
	})
}

func forEachTypeWithEdges(store *ast.Store, fn func(ast.TypeID)) {
	for i := uint32(1); i <= store.Structs.Len(); i++ {
		fn(ast.TypeID{Kind: ast.TypeStruct, Idx: i})
	}
	for i := uint32(1); i <= store.Sequences.Len(); i++ {
		fn(ast.TypeID{Kind: ast.TypeSequence, Idx: i})
	}
	for i := uint32(1); i <= store.Dictionaries.Len(); i++ {
		fn(ast.TypeID{Kind: ast.TypeDictionary, Idx: i})
	}
	for i := uint32(1); i <= store.TypeAliases.Len(); i++ {
		fn(ast.TypeID{Kind: ast.TypeTypeAlias, Idx: i})
	}
}

func dfs(store *ast.Store, id ast.TypeID, state map[ast.TypeID]color, reporter diag.Reporter) {
	state[id] = grey
	for _, edge := range edgesOf(store, id) {
		switch state[edge] {
		case white:
			dfs(store, edge, state, reporter)
		case grey:
			if reporter != nil {
				reporter.Report(diag.SemCycleDetected, diag.SevError, spanOf(store, id),
					"type containment cycle detected", nil)
			}
		case black:
			// already fully explored, no cycle through this edge
		}
	}
	state[id] = black
}

// Edges exposes the containment-edge enumeration for reuse by
// internal/encoding's fixed-point traversal.
func Edges(store *ast.Store, id ast.TypeID) []ast.TypeID {
	return edgesOf(store, id)
}

func edgesOf(store *ast.Store, id ast.TypeID) []ast.TypeID {
	switch id.Kind {
	case ast.TypeStruct:
		s := store.Structs.Get(id.Idx)
		var out []ast.TypeID
		for _, fid := range s.Fields {
			f := store.Fields.Get(uint32(fid))
			if t := refTarget(store, f.DataType); t.IsValid() {
				out = append(out, t)
			}
		}
		return out
	case ast.TypeSequence:
		seq := store.Sequences.Get(id.Idx)
		if t := refTarget(store, seq.Element); t.IsValid() {
			return []ast.TypeID{t}
		}
	case ast.TypeDictionary:
		d := store.Dictionaries.Get(id.Idx)
		var out []ast.TypeID
		if t := refTarget(store, d.Key); t.IsValid() {
			out = append(out, t)
		}
		if t := refTarget(store, d.Value); t.IsValid() {
			out = append(out, t)
		}
		return out
	case ast.TypeTypeAlias:
		a := store.TypeAliases.Get(id.Idx)
		if t := refTarget(store, a.Underlying); t.IsValid() {
			return []ast.TypeID{t}
		}
	}
	return nil
}

func refTarget(store *ast.Store, ref ast.TypeRefID) ast.TypeID {
	r := store.TypeRefs.Get(uint32(ref))
	if r == nil || r.State != ast.Patched || r.IsOptional {
		// an optional field breaks the containment requirement on the wire
		return ast.TypeID{}
	}
	return r.Definition
}

func spanOf(store *ast.Store, id ast.TypeID) source.Span {
	switch id.Kind {
	case ast.TypeStruct:
		return store.Structs.Get(id.Idx).Span
	case ast.TypeSequence:
		return store.Sequences.Get(id.Idx).Span
	case ast.TypeDictionary:
		return store.Dictionaries.Get(id.Idx).Span
	case ast.TypeTypeAlias:
		return store.TypeAliases.Get(id.Idx).Span
	default:
		return source.Span{}
	}
}
