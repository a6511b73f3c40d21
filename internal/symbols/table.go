package symbols

import (
	"fmt"
	"strings"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
)

// Hints provide optional capacity suggestions for the table's arenas.
type Hints struct{ Scopes uint32 }

// Table aggregates the two name tables built by a single traversal of an
// ast.Store: TypeTable resolves type-producing names (the targets of
// TypeRef), EntityTable resolves every nameable entity including ones that
// cannot appear in a TypeRef position (Operation, Enumerator).
type Table struct {
	Scopes      *Scopes
	TypeTable   map[string]ast.TypeID
	EntityTable map[string]ast.DefID
	Strings     *source.Interner
}

// NewTable builds an empty table with primitives pre-registered into
// TypeTable, the same way the teacher's resolve_intrinsics.go pre-seeds
// built-in symbols before any user source is indexed.
func NewTable(h Hints, strings *source.Interner, store *ast.Store) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Scopes:      NewScopes(h.Scopes),
		TypeTable:   make(map[string]ast.TypeID, 64),
		EntityTable: make(map[string]ast.DefID, 64),
		Strings:     strings,
	}
	t.seedPrimitives(store)
	return t
}

func (t *Table) seedPrimitives(store *ast.Store) {
	if store == nil {
		return
	}
	for name, kind := range map[string]ast.PrimitiveKind{
		"bool": ast.PrimBool, "int8": ast.PrimInt8, "uint8": ast.PrimUInt8,
		"int16": ast.PrimInt16, "uint16": ast.PrimUInt16, "int32": ast.PrimInt32,
		"uint32": ast.PrimUInt32, "int64": ast.PrimInt64, "uint64": ast.PrimUInt64,
		"varint32": ast.PrimVarInt32, "varuint32": ast.PrimVarUInt32,
		"varint62": ast.PrimVarInt62, "varuint62": ast.PrimVarUInt62,
		"float32": ast.PrimFloat32, "float64": ast.PrimFloat64, "string": ast.PrimString,
		"ServiceAddress": ast.PrimServiceAddress, "AnyClass": ast.PrimAnyClass,
	} {
		t.TypeTable[name] = store.NewPrimitive(kind)
	}
}

// Index walks every compilation unit in store and populates TypeTable and
// EntityTable, keyed by "::"-joined fully-qualified name. Redefinitions
// (two entities sharing a fully-qualified name within the same container,
// per spec.md §4.9's identifier rule) are reported through bag rather than
// silently overwriting the first entry.
func (t *Table) Index(store *ast.Store, reporter diag.Reporter) {
	for _, unit := range store.Units {
		for _, def := range unit.Definitions {
			t.indexDef(store, nil, def, reporter)
		}
	}
}

func (t *Table) indexDef(store *ast.Store, path []string, def ast.DefID, reporter diag.Reporter) {
	switch def.Kind {
	case ast.DefModule:
		m := store.Modules.Get(def.Idx)
		fq := append(append([]string{}, path...), m.Identifier)
		for _, child := range m.Definitions {
			t.indexDef(store, fq, child, reporter)
		}
	case ast.DefStruct:
		s := store.Structs.Get(def.Idx)
		name := join(path, s.Identifier)
		t.addType(name, ast.TypeID{Kind: ast.TypeStruct, Idx: def.Idx}, s.Span, reporter)
		t.addEntity(name, def, s.Span, reporter)
	case ast.DefClass:
		c := store.Classes.Get(def.Idx)
		name := join(path, c.Identifier)
		t.addType(name, ast.TypeID{Kind: ast.TypeClass, Idx: def.Idx}, c.Span, reporter)
		t.addEntity(name, def, c.Span, reporter)
	case ast.DefException:
		e := store.Exceptions.Get(def.Idx)
		name := join(path, e.Identifier)
		t.addType(name, ast.TypeID{Kind: ast.TypeException, Idx: def.Idx}, e.Span, reporter)
		t.addEntity(name, def, e.Span, reporter)
	case ast.DefInterface:
		in := store.Interfaces.Get(def.Idx)
		name := join(path, in.Identifier)
		t.addType(name, ast.TypeID{Kind: ast.TypeInterface, Idx: def.Idx}, in.Span, reporter)
		t.addEntity(name, def, in.Span, reporter)
		for _, opID := range in.Operations {
			op := store.Operations.Get(uint32(opID))
			opName := join(append(path, in.Identifier), op.Identifier)
			t.addEntity(opName, ast.DefID{Kind: ast.DefOperation, Idx: uint32(opID)}, op.Span, reporter)
		}
	case ast.DefEnum:
		en := store.Enums.Get(def.Idx)
		name := join(path, en.Identifier)
		t.addType(name, ast.TypeID{Kind: ast.TypeEnum, Idx: def.Idx}, en.Span, reporter)
		t.addEntity(name, def, en.Span, reporter)
		for _, evID := range en.Enumerators {
			ev := store.Enumerators.Get(uint32(evID))
			evName := join(append(path, en.Identifier), ev.Identifier)
			t.addEntity(evName, ast.DefID{Kind: ast.DefEnumerator, Idx: uint32(evID)}, ev.Span, reporter)
		}
	case ast.DefCustomType:
		c := store.CustomTypes.Get(def.Idx)
		name := join(path, c.Identifier)
		t.addType(name, ast.TypeID{Kind: ast.TypeCustomType, Idx: def.Idx}, c.Span, reporter)
		t.addEntity(name, def, c.Span, reporter)
	case ast.DefTypeAlias:
		a := store.TypeAliases.Get(def.Idx)
		name := join(path, a.Identifier)
		t.addType(name, ast.TypeID{Kind: ast.TypeTypeAlias, Idx: def.Idx}, a.Span, reporter)
		t.addEntity(name, def, a.Span, reporter)
	}
}

func (t *Table) addType(name string, id ast.TypeID, sp source.Span, reporter diag.Reporter) {
	if _, exists := t.TypeTable[name]; exists {
		t.reportRedefinition(name, sp, reporter)
		return
	}
	t.TypeTable[name] = id
}

func (t *Table) addEntity(name string, id ast.DefID, sp source.Span, reporter diag.Reporter) {
	if _, exists := t.EntityTable[name]; exists {
		t.reportRedefinition(name, sp, reporter)
		return
	}
	t.EntityTable[name] = id
}

func (t *Table) reportRedefinition(name string, sp source.Span, reporter diag.Reporter) {
	if reporter == nil {
		return
	}
	reporter.Report(diag.SemRedefinition, diag.SevError, sp, fmt.Sprintf("%q is already defined", name), nil)
}

func join(path []string, leaf string) string {
	if len(path) == 0 {
		return leaf
	}
	return strings.Join(path, "::") + "::" + leaf
}
