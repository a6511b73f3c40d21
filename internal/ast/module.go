package ast

import "slicec/internal/source"

// Module is a named container of definitions, including nested modules.
// `module A::B::C { ... }` is expanded at construction time into three
// chained single-identifier modules; only the innermost carries the
// attributes and doc comment written at the declaration site.
type Module struct {
	Identifier string
	Parent     ModuleID // NoModuleID for a file-level module
	Attrs      []AttrID
	Doc        DocCommentID
	Definitions []DefID
	Scope      ScopeID
	Span       source.Span
}
