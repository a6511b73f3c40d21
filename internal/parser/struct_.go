package parser

import (
	"slicec/internal/ast"
	"slicec/internal/token"
)

// parseStruct parses `[compact] struct Ident { field* }` (spec.md §4.4).
func (p *Parser) parseStruct() (ast.DefID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	isCompact := false
	if p.at(token.KwCompact) {
		p.advance()
		isCompact = true
	}
	kw := p.advance() // 'struct'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.DefID{}, false
	}
	nameID := p.store.Strings.Intern(name)
	scope := p.pushNamedScope(nameID, nameSpan)
	defer p.popNamedScope()

	idx, def, _ := p.store.NewStruct(ast.Struct{
		Identifier: name,
		IsCompact:  isCompact,
		Attrs:      attrs,
		Doc:        doc,
		Scope:      scope,
		Span:       kw.Span,
	})

	fields := p.parseFieldList(def)
	s := p.store.Structs.Get(uint32(idx))
	s.Fields = fields
	s.Span = s.Span.Cover(p.lastSpan)
	return def, true
}
