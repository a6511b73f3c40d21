package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/token"
)

// parseCustomType parses `custom Ident;` (spec.md §4.4): an opaque type with
// no structure of its own, representation left to the target mapping.
func (p *Parser) parseCustomType() (ast.DefID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	kw := p.advance() // 'custom'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.DefID{}, false
	}
	span := kw.Span.Cover(nameSpan)
	if semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after a custom type"); ok {
		span = span.Cover(semi.Span)
	}

	_, def, _ := p.store.NewCustomType(ast.CustomType{
		Identifier: name,
		Attrs:      attrs,
		Doc:        doc,
		Scope:      p.currentScope(),
		Span:       span,
	})
	return def, true
}
