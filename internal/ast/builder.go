package ast

import "slicec/internal/source"

// NewModule allocates a Module and returns both its owning ModuleID and the
// DefID other containers should store.
func (s *Store) NewModule(m Module) (ModuleID, DefID) {
	idx := s.Modules.Allocate(m)
	return ModuleID(idx), DefID{Kind: DefModule, Idx: idx}
}

// NewStruct allocates a Struct, returning both its StructID and TypeID.
func (s *Store) NewStruct(v Struct) (StructID, DefID, TypeID) {
	idx := s.Structs.Allocate(v)
	return StructID(idx), DefID{Kind: DefStruct, Idx: idx}, TypeID{Kind: TypeStruct, Idx: idx}
}

// NewClass allocates a Class, returning both its ClassID and TypeID.
func (s *Store) NewClass(v Class) (ClassID, DefID, TypeID) {
	idx := s.Classes.Allocate(v)
	return ClassID(idx), DefID{Kind: DefClass, Idx: idx}, TypeID{Kind: TypeClass, Idx: idx}
}

// NewException allocates an Exception, returning both its ExceptionID and TypeID.
func (s *Store) NewException(v Exception) (ExceptionID, DefID, TypeID) {
	idx := s.Exceptions.Allocate(v)
	return ExceptionID(idx), DefID{Kind: DefException, Idx: idx}, TypeID{Kind: TypeException, Idx: idx}
}

// NewInterface allocates an Interface, returning both its InterfaceID and TypeID.
func (s *Store) NewInterface(v Interface) (InterfaceID, DefID, TypeID) {
	idx := s.Interfaces.Allocate(v)
	return InterfaceID(idx), DefID{Kind: DefInterface, Idx: idx}, TypeID{Kind: TypeInterface, Idx: idx}
}

// NewOperation allocates an Operation.
func (s *Store) NewOperation(v Operation) OperationID {
	return OperationID(s.Operations.Allocate(v))
}

// NewParameter allocates a Parameter.
func (s *Store) NewParameter(v Parameter) ParameterID {
	return ParameterID(s.Parameters.Allocate(v))
}

// NewField allocates a Field.
func (s *Store) NewField(v Field) FieldID {
	return FieldID(s.Fields.Allocate(v))
}

// NewEnum allocates an Enum, returning both its EnumID and TypeID.
func (s *Store) NewEnum(v Enum) (EnumID, DefID, TypeID) {
	idx := s.Enums.Allocate(v)
	return EnumID(idx), DefID{Kind: DefEnum, Idx: idx}, TypeID{Kind: TypeEnum, Idx: idx}
}

// NewEnumerator allocates an Enumerator, returning both its EnumeratorID and DefID.
func (s *Store) NewEnumerator(v Enumerator) (EnumeratorID, DefID) {
	idx := s.Enumerators.Allocate(v)
	return EnumeratorID(idx), DefID{Kind: DefEnumerator, Idx: idx}
}

// NewCustomType allocates a CustomType, returning both its CustomTypeID and TypeID.
func (s *Store) NewCustomType(v CustomType) (CustomTypeID, DefID, TypeID) {
	idx := s.CustomTypes.Allocate(v)
	return CustomTypeID(idx), DefID{Kind: DefCustomType, Idx: idx}, TypeID{Kind: TypeCustomType, Idx: idx}
}

// NewTypeAlias allocates a TypeAlias, returning both its TypeAliasID and TypeID.
func (s *Store) NewTypeAlias(v TypeAlias) (TypeAliasID, DefID, TypeID) {
	idx := s.TypeAliases.Allocate(v)
	return TypeAliasID(idx), DefID{Kind: DefTypeAlias, Idx: idx}, TypeID{Kind: TypeTypeAlias, Idx: idx}
}

// NewSequence allocates a Sequence, returning its TypeID.
func (s *Store) NewSequence(v Sequence) TypeID {
	idx := s.Sequences.Allocate(v)
	return TypeID{Kind: TypeSequence, Idx: idx}
}

// NewDictionary allocates a Dictionary, returning its TypeID.
func (s *Store) NewDictionary(v Dictionary) TypeID {
	idx := s.Dictionaries.Allocate(v)
	return TypeID{Kind: TypeDictionary, Idx: idx}
}

// NewPrimitive allocates a Primitive, returning its TypeID.
func (s *Store) NewPrimitive(kind PrimitiveKind) TypeID {
	idx := s.Primitives.Allocate(Primitive{Kind: kind})
	return TypeID{Kind: TypePrimitive, Idx: idx}
}

// NewAttr allocates an Attribute.
func (s *Store) NewAttr(v Attr) AttrID {
	return AttrID(s.Attrs.Allocate(v))
}

// NewTypeRef allocates an unpatched TypeRef for the given identifier text.
func (s *Store) NewTypeRef(identifier string, optional bool, scope ScopeRef, sp source.Span) TypeRefID {
	idx := s.TypeRefs.Allocate(TypeRef{
		State:      Unpatched,
		Identifier: identifier,
		IsOptional: optional,
		Scope:      scope,
		Span:       sp,
	})
	return TypeRefID(idx)
}

// NewDocComment allocates a DocComment.
func (s *Store) NewDocComment(v DocComment) DocCommentID {
	return DocCommentID(s.DocComments.Allocate(v))
}
