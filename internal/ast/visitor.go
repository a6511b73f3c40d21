package ast

// Visitor is implemented by a validator that wants to inspect every node of
// the kinds it cares about; Walk calls every method for every node of its
// kind (embed NopVisitor to get no-op defaults for the kinds a validator
// ignores).
type Visitor interface {
	VisitModule(*Store, ModuleID, *Module)
	VisitStruct(*Store, StructID, *Struct)
	VisitClass(*Store, ClassID, *Class)
	VisitException(*Store, ExceptionID, *Exception)
	VisitInterface(*Store, InterfaceID, *Interface)
	VisitOperation(*Store, OperationID, *Operation)
	VisitField(*Store, FieldID, *Field)
	VisitEnum(*Store, EnumID, *Enum)
	VisitEnumerator(*Store, EnumeratorID, *Enumerator)
	VisitCustomType(*Store, CustomTypeID, *CustomType)
	VisitTypeAlias(*Store, TypeAliasID, *TypeAlias)
}

// NopVisitor gives every Visitor method a no-op body; embed it and override
// only the methods a particular validator needs.
type NopVisitor struct{}

func (NopVisitor) VisitModule(*Store, ModuleID, *Module)             {}
func (NopVisitor) VisitStruct(*Store, StructID, *Struct)             {}
func (NopVisitor) VisitClass(*Store, ClassID, *Class)                {}
func (NopVisitor) VisitException(*Store, ExceptionID, *Exception)    {}
func (NopVisitor) VisitInterface(*Store, InterfaceID, *Interface)    {}
func (NopVisitor) VisitOperation(*Store, OperationID, *Operation)    {}
func (NopVisitor) VisitField(*Store, FieldID, *Field)                {}
func (NopVisitor) VisitEnum(*Store, EnumID, *Enum)                   {}
func (NopVisitor) VisitEnumerator(*Store, EnumeratorID, *Enumerator) {}
func (NopVisitor) VisitCustomType(*Store, CustomTypeID, *CustomType) {}
func (NopVisitor) VisitTypeAlias(*Store, TypeAliasID, *TypeAlias)    {}

// Walk traverses every definition reachable from every compilation unit's
// top level, depth-first through nested modules and their containers'
// members, dispatching one Visit call per node.
func Walk(s *Store, v Visitor) {
	for _, u := range s.Units {
		for _, def := range u.Definitions {
			walkDef(s, def, v)
		}
	}
}

func walkDef(s *Store, id DefID, v Visitor) {
	switch id.Kind {
	case DefModule:
		m := s.Modules.Get(id.Idx)
		v.VisitModule(s, ModuleID(id.Idx), m)
		for _, child := range m.Definitions {
			walkDef(s, child, v)
		}
	case DefStruct:
		st := s.Structs.Get(id.Idx)
		v.VisitStruct(s, StructID(id.Idx), st)
		for _, f := range st.Fields {
			v.VisitField(s, f, s.Fields.Get(uint32(f)))
		}
	case DefClass:
		c := s.Classes.Get(id.Idx)
		v.VisitClass(s, ClassID(id.Idx), c)
		for _, f := range c.Fields {
			v.VisitField(s, f, s.Fields.Get(uint32(f)))
		}
	case DefException:
		e := s.Exceptions.Get(id.Idx)
		v.VisitException(s, ExceptionID(id.Idx), e)
		for _, f := range e.Fields {
			v.VisitField(s, f, s.Fields.Get(uint32(f)))
		}
	case DefInterface:
		in := s.Interfaces.Get(id.Idx)
		v.VisitInterface(s, InterfaceID(id.Idx), in)
		for _, op := range in.Operations {
			v.VisitOperation(s, op, s.Operations.Get(uint32(op)))
		}
	case DefEnum:
		en := s.Enums.Get(id.Idx)
		v.VisitEnum(s, EnumID(id.Idx), en)
		for _, ev := range en.Enumerators {
			v.VisitEnumerator(s, ev, s.Enumerators.Get(uint32(ev)))
		}
	case DefCustomType:
		v.VisitCustomType(s, CustomTypeID(id.Idx), s.CustomTypes.Get(id.Idx))
	case DefTypeAlias:
		v.VisitTypeAlias(s, TypeAliasID(id.Idx), s.TypeAliases.Get(id.Idx))
	}
}
