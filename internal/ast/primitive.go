package ast

// PrimitiveKind enumerates the built-in scalar and well-known types.
type PrimitiveKind uint8

const (
	PrimInvalid PrimitiveKind = iota
	PrimBool
	PrimInt8
	PrimUInt8
	PrimInt16
	PrimUInt16
	PrimInt32
	PrimUInt32
	PrimInt64
	PrimUInt64
	PrimVarInt32
	PrimVarUInt32
	PrimVarInt62
	PrimVarUInt62
	PrimFloat32
	PrimFloat64
	PrimString
	PrimServiceAddress
	PrimAnyClass
)

var primitiveNames = map[string]PrimitiveKind{
	"bool":           PrimBool,
	"int8":           PrimInt8,
	"uint8":          PrimUInt8,
	"int16":          PrimInt16,
	"uint16":         PrimUInt16,
	"int32":          PrimInt32,
	"uint32":         PrimUInt32,
	"int64":          PrimInt64,
	"uint64":         PrimUInt64,
	"varint32":       PrimVarInt32,
	"varuint32":      PrimVarUInt32,
	"varint62":       PrimVarInt62,
	"varuint62":      PrimVarUInt62,
	"float32":        PrimFloat32,
	"float64":        PrimFloat64,
	"string":         PrimString,
	"ServiceAddress": PrimServiceAddress,
	"AnyClass":       PrimAnyClass,
}

// LookupPrimitive resolves a bare identifier to a primitive kind, if any.
func LookupPrimitive(name string) (PrimitiveKind, bool) {
	k, ok := primitiveNames[name]
	return k, ok
}

// IsFloat reports whether the primitive is one of the floating-point kinds.
func (k PrimitiveKind) IsFloat() bool {
	return k == PrimFloat32 || k == PrimFloat64
}

// IsInteger reports whether the primitive is a fixed or variable-width integer.
func (k PrimitiveKind) IsInteger() bool {
	switch k {
	case PrimInt8, PrimUInt8, PrimInt16, PrimUInt16, PrimInt32, PrimUInt32,
		PrimInt64, PrimUInt64, PrimVarInt32, PrimVarUInt32, PrimVarInt62, PrimVarUInt62:
		return true
	default:
		return false
	}
}

func (k PrimitiveKind) String() string {
	for name, kind := range primitiveNames {
		if kind == k {
			return name
		}
	}
	return "<invalid primitive>"
}

// Primitive is the node form of a built-in type, interned once per kind.
type Primitive struct {
	Kind PrimitiveKind
}
