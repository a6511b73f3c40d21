package validate

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
)

// ruleSequence has no constraint of its own: a sequence's element may be any
// type, tagged or not (spec.md §4.9 lists sequences only to say the
// validator recurses into the element type rather than stopping at the
// container). The other rules iterate the whole store, so a dictionary used
// as a sequence element is checked by ruleDictionary like any other.
// isValidKeyType below recurses only through typealias layers and compact
// struct fields; a sequence or dictionary reached that way is not a valid
// key type.
func ruleSequence(store *ast.Store, reporter diag.Reporter) {
	// Present for registration-order symmetry with the other seven rules;
	// sequences have no pass of their own.
	_ = store
	_ = reporter
}

// isValidKeyType classifies whether t may be used as a dictionary key,
// recursing through TypeAlias wrappers and compact struct fields (spec.md
// §4.9). visiting guards against runaway recursion through a pathological
// self-referential compact struct; the cycle detector rules out true
// containment cycles earlier in the pipeline, so this is a backstop, not the
// primary defense.
func isValidKeyType(store *ast.Store, t ast.TypeID, visiting map[ast.TypeID]bool) bool {
	if visiting[t] {
		return false
	}
	switch t.Kind {
	case ast.TypePrimitive:
		p := store.Primitives.Get(t.Idx)
		if p == nil {
			return false
		}
		switch p.Kind {
		case ast.PrimFloat32, ast.PrimFloat64, ast.PrimAnyClass, ast.PrimServiceAddress:
			return false
		default:
			return true
		}
	case ast.TypeEnum, ast.TypeCustomType:
		return true
	case ast.TypeTypeAlias:
		a := store.TypeAliases.Get(t.Idx)
		if a == nil {
			return false
		}
		return isValidKeyType(store, underlyingOf(store, a.Underlying), markVisiting(visiting, t))
	case ast.TypeStruct:
		s := store.Structs.Get(t.Idx)
		if s == nil || !s.IsCompact {
			return false
		}
		sub := markVisiting(visiting, t)
		for _, fid := range s.Fields {
			f := store.Fields.Get(uint32(fid))
			ref := store.TypeRefs.Get(uint32(f.DataType))
			if ref == nil || ref.State != ast.Patched || ref.IsOptional {
				return false
			}
			if !isValidKeyType(store, ref.Definition, sub) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func underlyingOf(store *ast.Store, ref ast.TypeRefID) ast.TypeID {
	r := store.TypeRefs.Get(uint32(ref))
	if r == nil || r.State != ast.Patched {
		return ast.TypeID{}
	}
	return r.Definition
}

func markVisiting(visiting map[ast.TypeID]bool, t ast.TypeID) map[ast.TypeID]bool {
	out := make(map[ast.TypeID]bool, len(visiting)+1)
	for k, v := range visiting {
		out[k] = v
	}
	out[t] = true
	return out
}
