package compiler

import "slicec/internal/ast"

// Visitor is the external AST-walking contract code generators implement
// (spec.md §6.2): one Enter/Leave pair per node kind in §3.2. Leave always
// runs after every child of that node has been visited, even for node
// kinds with no children of their own.
type Visitor interface {
	EnterModule(*ast.Module)
	LeaveModule(*ast.Module)
	EnterStruct(*ast.Struct)
	LeaveStruct(*ast.Struct)
	EnterClass(*ast.Class)
	LeaveClass(*ast.Class)
	EnterException(*ast.Exception)
	LeaveException(*ast.Exception)
	EnterInterface(*ast.Interface)
	LeaveInterface(*ast.Interface)
	EnterOperation(*ast.Operation)
	LeaveOperation(*ast.Operation)
	EnterField(*ast.Field)
	LeaveField(*ast.Field)
	EnterEnum(*ast.Enum)
	LeaveEnum(*ast.Enum)
	EnterEnumerator(*ast.Enumerator)
	LeaveEnumerator(*ast.Enumerator)
	EnterCustomType(*ast.CustomType)
	LeaveCustomType(*ast.CustomType)
	EnterTypeAlias(*ast.TypeAlias)
	LeaveTypeAlias(*ast.TypeAlias)
}

// VisitorBase gives every Visitor method a no-op body; embed it and
// override only the hooks a particular code generator needs.
type VisitorBase struct{}

func (VisitorBase) EnterModule(*ast.Module)               {}
func (VisitorBase) LeaveModule(*ast.Module)                {}
func (VisitorBase) EnterStruct(*ast.Struct)                {}
func (VisitorBase) LeaveStruct(*ast.Struct)                {}
func (VisitorBase) EnterClass(*ast.Class)                  {}
func (VisitorBase) LeaveClass(*ast.Class)                  {}
func (VisitorBase) EnterException(*ast.Exception)          {}
func (VisitorBase) LeaveException(*ast.Exception)          {}
func (VisitorBase) EnterInterface(*ast.Interface)          {}
func (VisitorBase) LeaveInterface(*ast.Interface)          {}
func (VisitorBase) EnterOperation(*ast.Operation)          {}
func (VisitorBase) LeaveOperation(*ast.Operation)          {}
func (VisitorBase) EnterField(*ast.Field)                  {}
func (VisitorBase) LeaveField(*ast.Field)                  {}
func (VisitorBase) EnterEnum(*ast.Enum)                    {}
func (VisitorBase) LeaveEnum(*ast.Enum)                     {}
func (VisitorBase) EnterEnumerator(*ast.Enumerator)        {}
func (VisitorBase) LeaveEnumerator(*ast.Enumerator)        {}
func (VisitorBase) EnterCustomType(*ast.CustomType)        {}
func (VisitorBase) LeaveCustomType(*ast.CustomType)        {}
func (VisitorBase) EnterTypeAlias(*ast.TypeAlias)          {}
func (VisitorBase) LeaveTypeAlias(*ast.TypeAlias)          {}

// VisitWith walks every definition reachable from every compilation unit's
// top level, depth-first through nested modules and their containers'
// members, the same traversal shape as ast.Walk but with paired enter/leave
// hooks instead of ast.Walk's single per-node dispatch.
func (d *CompilationData) VisitWith(v Visitor) {
	store := d.AST
	for _, u := range store.Units {
		for _, def := range u.Definitions {
			walkDef(store, def, v)
		}
	}
}

func walkDef(s *ast.Store, id ast.DefID, v Visitor) {
	switch id.Kind {
	case ast.DefModule:
		m := s.Modules.Get(id.Idx)
		v.EnterModule(m)
		for _, child := range m.Definitions {
			walkDef(s, child, v)
		}
		v.LeaveModule(m)
	case ast.DefStruct:
		st := s.Structs.Get(id.Idx)
		v.EnterStruct(st)
		walkFields(s, st.Fields, v)
		v.LeaveStruct(st)
	case ast.DefClass:
		c := s.Classes.Get(id.Idx)
		v.EnterClass(c)
		walkFields(s, c.Fields, v)
		v.LeaveClass(c)
	case ast.DefException:
		e := s.Exceptions.Get(id.Idx)
		v.EnterException(e)
		walkFields(s, e.Fields, v)
		v.LeaveException(e)
	case ast.DefInterface:
		in := s.Interfaces.Get(id.Idx)
		v.EnterInterface(in)
		for _, opID := range in.Operations {
			op := s.Operations.Get(uint32(opID))
			v.EnterOperation(op)
			v.LeaveOperation(op)
		}
		v.LeaveInterface(in)
	case ast.DefEnum:
		en := s.Enums.Get(id.Idx)
		v.EnterEnum(en)
		for _, evID := range en.Enumerators {
			ev := s.Enumerators.Get(uint32(evID))
			v.EnterEnumerator(ev)
			v.LeaveEnumerator(ev)
		}
		v.LeaveEnum(en)
	case ast.DefCustomType:
		ct := s.CustomTypes.Get(id.Idx)
		v.EnterCustomType(ct)
		v.LeaveCustomType(ct)
	case ast.DefTypeAlias:
		ta := s.TypeAliases.Get(id.Idx)
		v.EnterTypeAlias(ta)
		v.LeaveTypeAlias(ta)
	}
}

func walkFields(s *ast.Store, fields []ast.FieldID, v Visitor) {
	for _, fid := range fields {
		f := s.Fields.Get(uint32(fid))
		v.EnterField(f)
		v.LeaveField(f)
	}
}
