package ast

type (
	// ModuleID identifies a module node.
	ModuleID uint32
	// StructID identifies a struct node.
	StructID uint32
	// ClassID identifies a class node.
	ClassID uint32
	// ExceptionID identifies an exception node.
	ExceptionID uint32
	// InterfaceID identifies an interface node.
	InterfaceID uint32
	// OperationID identifies an interface operation.
	OperationID uint32
	// ParameterID identifies an operation parameter.
	ParameterID uint32
	// FieldID identifies a struct/class/exception field.
	FieldID uint32
	// EnumID identifies an enum node.
	EnumID uint32
	// EnumeratorID identifies an enum's enumerator.
	EnumeratorID uint32
	// CustomTypeID identifies a custom (opaque) type node.
	CustomTypeID uint32
	// TypeAliasID identifies a typealias node.
	TypeAliasID uint32
	// SequenceID identifies a sequence type node.
	SequenceID uint32
	// DictionaryID identifies a dictionary type node.
	DictionaryID uint32
	// PrimitiveID identifies a primitive type node.
	PrimitiveID uint32
	// AttrID identifies an attribute.
	AttrID uint32
	// TypeRefID identifies a type reference node.
	TypeRefID uint32
	// DocCommentID identifies a doc comment.
	DocCommentID uint32
)

const (
	NoModuleID      ModuleID      = 0
	NoStructID      StructID      = 0
	NoClassID       ClassID       = 0
	NoExceptionID   ExceptionID   = 0
	NoInterfaceID   InterfaceID   = 0
	NoOperationID   OperationID   = 0
	NoParameterID   ParameterID   = 0
	NoFieldID       FieldID       = 0
	NoEnumID        EnumID        = 0
	NoEnumeratorID  EnumeratorID  = 0
	NoCustomTypeID  CustomTypeID  = 0
	NoTypeAliasID   TypeAliasID   = 0
	NoSequenceID    SequenceID    = 0
	NoDictionaryID  DictionaryID  = 0
	NoPrimitiveID   PrimitiveID   = 0
	NoAttrID        AttrID        = 0
	NoTypeRefID     TypeRefID     = 0
	NoDocCommentID  DocCommentID  = 0
)

func (id ModuleID) IsValid() bool     { return id != NoModuleID }
func (id StructID) IsValid() bool     { return id != NoStructID }
func (id ClassID) IsValid() bool      { return id != NoClassID }
func (id ExceptionID) IsValid() bool  { return id != NoExceptionID }
func (id InterfaceID) IsValid() bool  { return id != NoInterfaceID }
func (id OperationID) IsValid() bool  { return id != NoOperationID }
func (id ParameterID) IsValid() bool  { return id != NoParameterID }
func (id FieldID) IsValid() bool      { return id != NoFieldID }
func (id EnumID) IsValid() bool       { return id != NoEnumID }
func (id EnumeratorID) IsValid() bool { return id != NoEnumeratorID }
func (id CustomTypeID) IsValid() bool { return id != NoCustomTypeID }
func (id TypeAliasID) IsValid() bool  { return id != NoTypeAliasID }
func (id SequenceID) IsValid() bool   { return id != NoSequenceID }
func (id DictionaryID) IsValid() bool { return id != NoDictionaryID }
func (id PrimitiveID) IsValid() bool  { return id != NoPrimitiveID }
func (id AttrID) IsValid() bool       { return id != NoAttrID }
func (id TypeRefID) IsValid() bool    { return id != NoTypeRefID }
func (id DocCommentID) IsValid() bool { return id != NoDocCommentID }

// DefKind discriminates the kind of definition a DefID refers to. Every
// user-nameable entity (the EntityTable's value type) carries one.
type DefKind uint8

const (
	DefInvalid DefKind = iota
	DefModule
	DefStruct
	DefClass
	DefException
	DefInterface
	DefOperation
	DefEnum
	DefEnumerator
	DefCustomType
	DefTypeAlias
)

// DefID is a type-erased, kind-tagged reference to any definable entity,
// used by the entity table and by TypeRef once patched.
type DefID struct {
	Kind DefKind
	Idx  uint32
}

// TypeKind discriminates the kind of type a TypeID sum-type node refers to.
// Every entry in the TypeTable and every patched TypeRef carries one.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeStruct
	TypeClass
	TypeException
	TypeInterface
	TypeEnum
	TypeCustomType
	TypeTypeAlias
	TypeSequence
	TypeDictionary
	TypePrimitive
)

// TypeID is a type-erased, kind-tagged reference to any type-producing
// entity.
type TypeID struct {
	Kind TypeKind
	Idx  uint32
}

// IsValid reports whether the DefID refers to a real definition.
func (d DefID) IsValid() bool { return d.Kind != DefInvalid }

// IsValid reports whether the TypeID refers to a real type.
func (t TypeID) IsValid() bool { return t.Kind != TypeInvalid }
