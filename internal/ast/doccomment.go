package ast

import "slicec/internal/source"

// DocCommentTagKind discriminates a recognized `@tag` inside a doc comment.
type DocCommentTagKind uint8

const (
	DocTagNone DocCommentTagKind = iota
	DocTagParam
	DocTagReturns
	DocTagThrows
	DocTagSee
)

// DocCommentTag is one `@param name text` / `@returns text` / `@throws Type
// text` / `@see target` entry parsed out of a doc comment's body.
type DocCommentTag struct {
	Kind   DocCommentTagKind
	Target string // parameter name, exception name, or link target; empty for @returns
	Text   string
	Span   source.Span
}

// DocComment is the parsed form of the doc-comment trivia (`///` lines or a
// `/** */` block) immediately preceding an entity.
type DocComment struct {
	Summary string
	Tags    []DocCommentTag
	Span    source.Span
}
