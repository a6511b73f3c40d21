package diag

import "slicec/internal/source"

// AllowSet tracks which diagnostic codes have been suppressed via an
// @allow attribute on an entity. FilteringReporter uses it to drop those
// codes and forward everything else.
type AllowSet struct {
	codes map[Code]struct{}
}

// NewAllowSet builds an AllowSet from the string arguments of an @allow
// attribute. Unknown names are ignored; callers validate the attribute's
// argument list separately during attribute validation.
func NewAllowSet(names ...string) *AllowSet {
	a := &AllowSet{codes: make(map[Code]struct{}, len(names))}
	for _, n := range names {
		if code, ok := codeByName[n]; ok {
			a.codes[code] = struct{}{}
		}
	}
	return a
}

// Allows reports whether the given code is suppressed by this set.
func (a *AllowSet) Allows(code Code) bool {
	if a == nil {
		return false
	}
	_, ok := a.codes[code]
	return ok
}

// FilteringReporter wraps a Reporter and drops any diagnostic whose code is
// present in the active AllowSet for the entity currently being validated.
type FilteringReporter struct {
	next  Reporter
	allow *AllowSet
}

// NewFilteringReporter returns a Reporter that suppresses diagnostics allowed
// by allow before forwarding the rest to next.
func NewFilteringReporter(next Reporter, allow *AllowSet) *FilteringReporter {
	return &FilteringReporter{next: next, allow: allow}
}

func (r *FilteringReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r == nil || r.next == nil {
		return
	}
	if r.allow.Allows(code) {
		return
	}
	r.next.Report(code, sev, primary, msg, notes)
}

// codeByName maps the lowercase, hyphenated @allow argument spelling to its
// Code. Only codes that validators are expected to ever allow are listed;
// lexical and syntax codes cannot be suppressed this way.
var codeByName = map[string]Code{
	"redefinition":         SemRedefinition,
	"unresolved":           SemUnresolved,
	"unsupported-type":     SemUnsupportedType,
	"duplicate-enumerator": SemDuplicateEnumeratorValue,
	"shadows-inherited":    SemShadowsInheritedMember,
	"deprecated":           SemDeprecatedUsage,
	"unknown-link":         SemDocUnknownLink,
}
