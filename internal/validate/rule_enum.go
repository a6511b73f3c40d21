package validate

import (
	"fmt"
	"math"

	"slicec/internal/ast"
	"slicec/internal/diag"
)

// enumBounds gives the representable [min, max] range for an enum's
// underlying integer primitive. uint64's true upper bound does not fit in
// EnumValue's int64 storage; it is clamped to math.MaxInt64, which every
// value any real .slice file declares fits comfortably under.
var enumBounds = map[ast.PrimitiveKind][2]int64{
	ast.PrimInt8:      {-128, 127},
	ast.PrimUInt8:     {0, 255},
	ast.PrimInt16:     {-32768, 32767},
	ast.PrimUInt16:    {0, 65535},
	ast.PrimInt32:     {math.MinInt32, math.MaxInt32},
	ast.PrimUInt32:    {0, math.MaxUint32},
	ast.PrimInt64:     {math.MinInt64, math.MaxInt64},
	ast.PrimUInt64:    {0, math.MaxInt64},
	ast.PrimVarInt32:  {math.MinInt32, math.MaxInt32},
	ast.PrimVarUInt32: {0, math.MaxUint32},
	ast.PrimVarInt62:  {-(1 << 61), (1 << 61) - 1},
	ast.PrimVarUInt62: {0, (1 << 62) - 1},
}

// defaultEnumBounds is the range enumerator values must fit when no
// underlying type is written (spec.md §4.9: "a non-negative int representable
// in the chosen default width").
var defaultEnumBounds = [2]int64{0, math.MaxInt32}

// ruleEnum checks that every enumerator's value fits its enum's underlying
// type (or the default range, if none was written) and that no two
// enumerators share a value unless the enum is `unchecked`.
func ruleEnum(store *ast.Store, reporter diag.Reporter) {
	n := store.Enums.Len()
	for i := uint32(1); i <= n; i++ {
		en := store.Enums.Get(i)
		if en == nil {
			continue
		}
		r := scopedReporter(store, en.Attrs, reporter)
		lo, hi := enumRange(store, en)

		seen := make(map[int64]ast.EnumeratorID, len(en.Enumerators))
		for _, evID := range en.Enumerators {
			ev := store.Enumerators.Get(uint32(evID))
			if ev == nil {
				continue
			}
			v := ev.Value.Value
			if v < lo || v > hi {
				diag.ReportError(r, diag.SemEnumeratorValueOutOfRange, ev.Span,
					fmt.Sprintf("enumerator %q value %d is out of range [%d, %d]", ev.Identifier, v, lo, hi)).Emit()
			}
			if !en.IsUnchecked {
				if prior, dup := seen[v]; dup {
					priorEv := store.Enumerators.Get(uint32(prior))
					diag.ReportError(r, diag.SemDuplicateEnumeratorValue, ev.Span,
						fmt.Sprintf("enumerator %q duplicates value %d already used by %q", ev.Identifier, v, priorEv.Identifier)).Emit()
				} else {
					seen[v] = evID
				}
			}
		}
	}
}

func enumRange(store *ast.Store, en *ast.Enum) (int64, int64) {
	if !en.Underlying.IsValid() {
		return defaultEnumBounds[0], defaultEnumBounds[1]
	}
	ref := store.TypeRefs.Get(uint32(en.Underlying))
	if ref == nil || ref.State != ast.Patched {
		return defaultEnumBounds[0], defaultEnumBounds[1]
	}
	p, ok := store.AsPrimitive(ref.Definition)
	if !ok {
		return defaultEnumBounds[0], defaultEnumBounds[1]
	}
	if b, ok := enumBounds[p.Kind]; ok {
		return b[0], b[1]
	}
	return defaultEnumBounds[0], defaultEnumBounds[1]
}
