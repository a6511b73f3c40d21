// Package encoding computes, per type, the set of compilation modes
// (Slice1/Slice2) that type is representable in, and validates that every
// file only uses types supporting its declared mode.
package encoding

import (
	"fmt"

	"slicec/internal/ast"
	"slicec/internal/diag"
)

var primitiveEncodings = map[ast.PrimitiveKind]ast.EncodingSet{
	ast.PrimAnyClass: ast.EncodingSlice1,

	ast.PrimUInt16:    ast.EncodingSlice2,
	ast.PrimUInt32:    ast.EncodingSlice2,
	ast.PrimUInt64:    ast.EncodingSlice2,
	ast.PrimVarInt32:  ast.EncodingSlice2,
	ast.PrimVarUInt32: ast.EncodingSlice2,
	ast.PrimVarInt62:  ast.EncodingSlice2,
	ast.PrimVarUInt62: ast.EncodingSlice2,
	ast.PrimInt8:      ast.EncodingSlice2,
}

func encodingOfPrimitive(kind ast.PrimitiveKind) ast.EncodingSet {
	if set, ok := primitiveEncodings[kind]; ok {
		return set
	}
	return ast.EncodingBoth
}

// Patch runs a fixed-point pass over the struct containment graph,
// intersecting each struct's hard-coded base capability with the capability
// of every field it transitively references. It assumes internal/cycle has
// already run and the graph is acyclic.
func Patch(store *ast.Store) {
	initBase(store)

	// A handful of fixed-point passes is enough for any acyclic graph no
	// deeper than the pass count; types settle monotonically (sets only
	// shrink), so extra passes beyond convergence are harmless no-ops.
	passes := totalTypeCount(store) + 1
	for i := 0; i < passes; i++ {
		if !settleOnce(store) {
			break
		}
	}
}

func initBase(store *ast.Store) {
	for i := uint32(1); i <= store.Structs.Len(); i++ {
		store.Structs.Get(i).SupportedEncodings = ast.EncodingBoth
	}
	for i := uint32(1); i <= store.Classes.Len(); i++ {
		store.Classes.Get(i).SupportedEncodings = ast.EncodingSlice1
	}
	for i := uint32(1); i <= store.Exceptions.Len(); i++ {
		e := store.Exceptions.Get(i)
		if baseIsClassLike(store, e.Base) {
			e.SupportedEncodings = ast.EncodingSlice1
		} else {
			e.SupportedEncodings = ast.EncodingBoth
		}
	}
	for i := uint32(1); i <= store.Interfaces.Len(); i++ {
		store.Interfaces.Get(i).SupportedEncodings = ast.EncodingBoth
	}
	for i := uint32(1); i <= store.Enums.Len(); i++ {
		store.Enums.Get(i).SupportedEncodings = ast.EncodingBoth
	}
}

func baseIsClassLike(store *ast.Store, base ast.TypeRefID) bool {
	if base == ast.NoTypeRefID {
		return false
	}
	r := store.TypeRefs.Get(uint32(base))
	return r != nil && r.State == ast.Patched && r.Definition.Kind == ast.TypeClass
}

func totalTypeCount(store *ast.Store) int {
	return int(store.Structs.Len() + store.Classes.Len() + store.Exceptions.Len() +
		store.Interfaces.Len() + store.Enums.Len() + store.Sequences.Len() + store.Dictionaries.Len())
}

// settleOnce recomputes every struct's set by intersecting its current value
// with the sets of its fields' types, returning true if anything changed.
func settleOnce(store *ast.Store) bool {
	changed := false

	for i := uint32(1); i <= store.Structs.Len(); i++ {
		s := store.Structs.Get(i)
		next := s.SupportedEncodings
		for _, fid := range s.Fields {
			f := store.Fields.Get(uint32(fid))
			next = next.Intersect(fieldEncodings(store, f))
		}
		if next != s.SupportedEncodings {
			s.SupportedEncodings = next
			changed = true
		}
	}

	// Sequence and Dictionary carry no SupportedEncodings field of their own
	// (they are structural, not named); Of() recomputes their contribution
	// live by recursing into their element/key/value types on every call, so
	// only Struct needs fixed-point settling here.
	return changed
}

// fieldEncodings returns the modes a field contributes to its owning
// container, applying the "optional non-primitive in a value slot disables
// Slice1" rule (classes/AnyClass exempt).
func fieldEncodings(store *ast.Store, f *ast.Field) ast.EncodingSet {
	r := store.TypeRefs.Get(uint32(f.DataType))
	if r == nil || r.State != ast.Patched {
		return ast.EncodingBoth
	}
	set := Of(store, r.Definition)
	if r.IsOptional && r.Definition.Kind != ast.TypeClass && r.Definition.Kind != ast.TypePrimitive {
		set = set &^ ast.EncodingSlice1
	} else if r.IsOptional && r.Definition.Kind == ast.TypePrimitive {
		if prim, ok := store.AsPrimitive(r.Definition); ok && prim.Kind != ast.PrimAnyClass {
			set = set &^ ast.EncodingSlice1
		}
	}
	return set
}

// Of returns the currently computed SupportedEncodings for id, reading
// through to a live primitive table lookup or structural recursion for
// Sequence/Dictionary, which carry no field of their own.
func Of(store *ast.Store, id ast.TypeID) ast.EncodingSet {
	switch id.Kind {
	case ast.TypeStruct:
		return store.Structs.Get(id.Idx).SupportedEncodings
	case ast.TypeClass:
		return store.Classes.Get(id.Idx).SupportedEncodings
	case ast.TypeException:
		return store.Exceptions.Get(id.Idx).SupportedEncodings
	case ast.TypeInterface:
		return store.Interfaces.Get(id.Idx).SupportedEncodings
	case ast.TypeEnum:
		return store.Enums.Get(id.Idx).SupportedEncodings
	case ast.TypeCustomType:
		return ast.EncodingBoth
	case ast.TypeTypeAlias:
		a := store.TypeAliases.Get(id.Idx)
		r := store.TypeRefs.Get(uint32(a.Underlying))
		if r != nil && r.State == ast.Patched {
			return Of(store, r.Definition)
		}
		return ast.EncodingBoth
	case ast.TypeSequence:
		seq := store.Sequences.Get(id.Idx)
		r := store.TypeRefs.Get(uint32(seq.Element))
		if r != nil && r.State == ast.Patched {
			return Of(store, r.Definition)
		}
		return ast.EncodingBoth
	case ast.TypeDictionary:
		d := store.Dictionaries.Get(id.Idx)
		set := ast.EncodingBoth
		if r := store.TypeRefs.Get(uint32(d.Key)); r != nil && r.State == ast.Patched {
			set = set.Intersect(Of(store, r.Definition))
		}
		if r := store.TypeRefs.Get(uint32(d.Value)); r != nil && r.State == ast.Patched {
			set = set.Intersect(Of(store, r.Definition))
		}
		return set
	case ast.TypePrimitive:
		p := store.Primitives.Get(id.Idx)
		return encodingOfPrimitive(p.Kind)
	default:
		return ast.EncodingBoth
	}
}

// CheckFile validates that every type referenced from a compilation unit
// supports that unit's declared encoding, reporting diag.SemUnsupportedType
// otherwise.
func CheckFile(store *ast.Store, unit *ast.CompilationUnit, reporter diag.Reporter) {
	if reporter == nil {
		return
	}
	n := store.TypeRefs.Len()
	for i := uint32(1); i <= n; i++ {
		ref := store.TypeRefs.Get(i)
		if ref == nil || ref.State != ast.Patched || ref.Span.File != unit.File {
			continue
		}
		set := Of(store, ref.Definition)
		if !set.Has(unit.Encoding) {
			reporter.Report(diag.SemUnsupportedType, diag.SevError, ref.Span,
				fmt.Sprintf("%q is not supported by the file's compilation mode", ref.Identifier),
				[]diag.Note{{Span: unit.EncodingSpan, Msg: "encoding declared here"}})
		}
	}
}
