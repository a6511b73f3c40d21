package ast

import (
	"slices"
	"strings"
)

// AttrTargetMask describes the set of entity kinds a directive may be
// applied to.
type AttrTargetMask uint16

const (
	AttrTargetNone AttrTargetMask = 0
	AttrTargetFile AttrTargetMask = 1 << iota
	AttrTargetModule
	AttrTargetStruct
	AttrTargetClass
	AttrTargetException
	AttrTargetInterface
	AttrTargetOperation
	AttrTargetParameter
	AttrTargetField
	AttrTargetEnum
	AttrTargetEnumerator
	AttrTargetCustomType
	AttrTargetTypeAlias
)

// AttrArity bounds how many arguments a directive accepts.
type AttrArity struct {
	Min int
	Max int // -1 means unbounded
}

// AttrSpec describes a recognized directive: where it may be applied and how
// many arguments it takes. Directives not in the catalog are treated as
// language-mapping-specific and retained verbatim without arity checks.
type AttrSpec struct {
	Name    string
	Targets AttrTargetMask
	Arity   AttrArity
	// AllowedIdentArgs, when non-empty, restricts AttrArgIdent arguments to
	// this whitelist (e.g. format's Compact/Sliced).
	AllowedIdentArgs []string
}

// Allows reports whether the directive can be applied to the given target.
func (spec AttrSpec) Allows(target AttrTargetMask) bool {
	return spec.Targets&target != 0
}

var attrRegistry = map[string]AttrSpec{
	"compress": {
		Name:             "compress",
		Targets:          AttrTargetOperation,
		Arity:            AttrArity{Min: 1, Max: 2},
		AllowedIdentArgs: []string{"Args", "Return"},
	},
	"format": {
		Name:             "format",
		Targets:          AttrTargetStruct | AttrTargetClass | AttrTargetException,
		Arity:            AttrArity{Min: 1, Max: 1},
		AllowedIdentArgs: []string{"Compact", "Sliced"},
	},
	"deprecated": {
		Name: "deprecated",
		Targets: AttrTargetModule | AttrTargetStruct | AttrTargetClass | AttrTargetException |
			AttrTargetInterface | AttrTargetOperation | AttrTargetField | AttrTargetEnum |
			AttrTargetEnumerator | AttrTargetCustomType | AttrTargetTypeAlias,
		Arity: AttrArity{Min: 0, Max: 1},
	},
	"oneway": {
		Name:    "oneway",
		Targets: AttrTargetOperation,
		Arity:   AttrArity{Min: 0, Max: 0},
	},
	"allow": {
		Name: "allow",
		Targets: AttrTargetFile | AttrTargetModule | AttrTargetStruct | AttrTargetClass |
			AttrTargetException | AttrTargetInterface | AttrTargetOperation | AttrTargetField |
			AttrTargetEnum | AttrTargetEnumerator | AttrTargetCustomType | AttrTargetTypeAlias,
		Arity: AttrArity{Min: 1, Max: -1},
	},
}

// LookupAttr returns the catalog entry for a directive name, case-sensitive
// per spec (only the @allow suppression mechanism itself is case-sensitive
// about warning codes; directive names match this registry's keys exactly).
func LookupAttr(name string) (AttrSpec, bool) {
	spec, ok := attrRegistry[name]
	return spec, ok
}

// AttrSpecs returns a stable slice of every registered directive sorted by name.
func AttrSpecs() []AttrSpec {
	names := make([]string, 0, len(attrRegistry))
	for name := range attrRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]AttrSpec, 0, len(names))
	for _, name := range names {
		out = append(out, attrRegistry[name])
	}
	return out
}

// IdentArgAllowed reports whether value is a legal bare-identifier argument
// for the directive, when the directive restricts its identifier arguments.
func (spec AttrSpec) IdentArgAllowed(value string) bool {
	if len(spec.AllowedIdentArgs) == 0 {
		return true
	}
	for _, v := range spec.AllowedIdentArgs {
		if v == value {
			return true
		}
	}
	return false
}

// IsKnownDirective reports whether name is present in the catalog, purely
// informational for code that wants to distinguish "known but misused" from
// "unknown, pass through verbatim" (strings.EqualFold used only for the
// near-miss hint, not for matching itself).
func IsKnownDirective(name string) bool {
	_, ok := attrRegistry[name]
	return ok
}

func nearestKnownDirective(name string) (string, bool) {
	for _, spec := range AttrSpecs() {
		if strings.EqualFold(spec.Name, name) {
			return spec.Name, true
		}
	}
	return "", false
}
