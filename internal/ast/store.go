package ast

import "slicec/internal/source"

// Store is the process-local arena for one compilation: every node kind
// lives in its own typed Arena, addressed by 1-based handles. A Store is
// mutable while parsing and during the reference/cycle/encoding patchers;
// Freeze marks it read-only for validation and for find_element queries.
type Store struct {
	Modules     *Arena[Module]
	Structs     *Arena[Struct]
	Classes     *Arena[Class]
	Exceptions  *Arena[Exception]
	Interfaces  *Arena[Interface]
	Operations  *Arena[Operation]
	Parameters  *Arena[Parameter]
	Fields      *Arena[Field]
	Enums       *Arena[Enum]
	Enumerators *Arena[Enumerator]
	CustomTypes *Arena[CustomType]
	TypeAliases *Arena[TypeAlias]
	Sequences   *Arena[Sequence]
	Dictionaries *Arena[Dictionary]
	Primitives  *Arena[Primitive]
	Attrs       *Arena[Attr]
	TypeRefs    *Arena[TypeRef]
	DocComments *Arena[DocComment]

	Units []*CompilationUnit

	Strings *source.Interner

	frozen bool
}

// NewStore creates an empty Store backed by modest capacity hints; arenas
// grow on demand like any other Arena[T].
func NewStore(strings *source.Interner) *Store {
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Store{
		Modules:      NewArena[Module](16),
		Structs:      NewArena[Struct](32),
		Classes:      NewArena[Class](32),
		Exceptions:   NewArena[Exception](16),
		Interfaces:   NewArena[Interface](16),
		Operations:   NewArena[Operation](32),
		Parameters:   NewArena[Parameter](64),
		Fields:       NewArena[Field](64),
		Enums:        NewArena[Enum](16),
		Enumerators:  NewArena[Enumerator](64),
		CustomTypes:  NewArena[CustomType](4),
		TypeAliases:  NewArena[TypeAlias](16),
		Sequences:    NewArena[Sequence](16),
		Dictionaries: NewArena[Dictionary](16),
		Primitives:   NewArena[Primitive](18),
		Attrs:        NewArena[Attr](32),
		TypeRefs:     NewArena[TypeRef](64),
		DocComments:  NewArena[DocComment](32),
		Strings:      strings,
	}
}

// Freeze marks the store read-only. The mark is advisory: the arenas do not
// enforce it, and mutation through Allocate or through a Get pointer is
// still possible at the Go type level. internal/compiler calls Freeze once
// the reference/cycle/encoding patchers have run, before validation.
func (s *Store) Freeze() { s.frozen = true }

// Frozen reports whether Freeze has been called.
func (s *Store) Frozen() bool { return s.frozen }

// AddUnit records one file's parse product.
func (s *Store) AddUnit(u *CompilationUnit) { s.Units = append(s.Units, u) }

// Def resolves a DefID to its underlying node, type-erased as `any`. Callers
// normally use the Kind-specific accessors on DefID instead.
func (s *Store) Def(id DefID) any {
	switch id.Kind {
	case DefModule:
		return s.Modules.Get(id.Idx)
	case DefStruct:
		return s.Structs.Get(id.Idx)
	case DefClass:
		return s.Classes.Get(id.Idx)
	case DefException:
		return s.Exceptions.Get(id.Idx)
	case DefInterface:
		return s.Interfaces.Get(id.Idx)
	case DefOperation:
		return s.Operations.Get(id.Idx)
	case DefEnum:
		return s.Enums.Get(id.Idx)
	case DefEnumerator:
		return s.Enumerators.Get(id.Idx)
	case DefCustomType:
		return s.CustomTypes.Get(id.Idx)
	case DefTypeAlias:
		return s.TypeAliases.Get(id.Idx)
	default:
		return nil
	}
}

// Type resolves a TypeID to its underlying node, type-erased as `any`.
func (s *Store) Type(id TypeID) any {
	switch id.Kind {
	case TypeStruct:
		return s.Structs.Get(id.Idx)
	case TypeClass:
		return s.Classes.Get(id.Idx)
	case TypeException:
		return s.Exceptions.Get(id.Idx)
	case TypeInterface:
		return s.Interfaces.Get(id.Idx)
	case TypeEnum:
		return s.Enums.Get(id.Idx)
	case TypeCustomType:
		return s.CustomTypes.Get(id.Idx)
	case TypeTypeAlias:
		return s.TypeAliases.Get(id.Idx)
	case TypeSequence:
		return s.Sequences.Get(id.Idx)
	case TypeDictionary:
		return s.Dictionaries.Get(id.Idx)
	case TypePrimitive:
		return s.Primitives.Get(id.Idx)
	default:
		return nil
	}
}

// AsStruct downcasts a TypeID to *Struct, if it refers to one.
func (s *Store) AsStruct(id TypeID) (*Struct, bool) {
	if id.Kind != TypeStruct {
		return nil, false
	}
	return s.Structs.Get(id.Idx), true
}

// AsClass downcasts a TypeID to *Class, if it refers to one.
func (s *Store) AsClass(id TypeID) (*Class, bool) {
	if id.Kind != TypeClass {
		return nil, false
	}
	return s.Classes.Get(id.Idx), true
}

// AsInterface downcasts a TypeID to *Interface, if it refers to one.
func (s *Store) AsInterface(id TypeID) (*Interface, bool) {
	if id.Kind != TypeInterface {
		return nil, false
	}
	return s.Interfaces.Get(id.Idx), true
}

// AsEnum downcasts a TypeID to *Enum, if it refers to one.
func (s *Store) AsEnum(id TypeID) (*Enum, bool) {
	if id.Kind != TypeEnum {
		return nil, false
	}
	return s.Enums.Get(id.Idx), true
}

// AsException downcasts a TypeID to *Exception, if it refers to one.
func (s *Store) AsException(id TypeID) (*Exception, bool) {
	if id.Kind != TypeException {
		return nil, false
	}
	return s.Exceptions.Get(id.Idx), true
}

// AsPrimitive downcasts a TypeID to *Primitive, if it refers to one.
func (s *Store) AsPrimitive(id TypeID) (*Primitive, bool) {
	if id.Kind != TypePrimitive {
		return nil, false
	}
	return s.Primitives.Get(id.Idx), true
}
