package parser

import (
	"slicec/internal/ast"
	"slicec/internal/token"
)

// parseException parses `exception Ident [extends Base] { field* }`
// (spec.md §4.4).
func (p *Parser) parseException() (ast.DefID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	kw := p.advance() // 'exception'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.DefID{}, false
	}

	var base ast.TypeRefID
	if p.at(token.KwExtends) {
		p.advance()
		base = p.parseTypeRef()
	}

	nameID := p.store.Strings.Intern(name)
	scope := p.pushNamedScope(nameID, nameSpan)
	defer p.popNamedScope()

	idx, def, _ := p.store.NewException(ast.Exception{
		Identifier: name,
		Base:       base,
		Attrs:      attrs,
		Doc:        doc,
		Scope:      scope,
		Span:       kw.Span,
	})

	fields := p.parseFieldList(def)
	e := p.store.Exceptions.Get(uint32(idx))
	e.Fields = fields
	e.Span = e.Span.Cover(p.lastSpan)
	return def, true
}
