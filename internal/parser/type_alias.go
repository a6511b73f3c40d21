package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/token"
)

// parseTypeAlias parses `typealias Ident = TypeRef;` (spec.md §4.4).
func (p *Parser) parseTypeAlias() (ast.DefID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	kw := p.advance() // 'typealias'
	name, _, ok := p.parseIdent()
	if !ok {
		return ast.DefID{}, false
	}
	p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after a typealias name")
	underlying := p.parseTypeRef()

	span := kw.Span
	if semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after a typealias"); ok {
		span = span.Cover(semi.Span)
	}

	_, def, _ := p.store.NewTypeAlias(ast.TypeAlias{
		Identifier: name,
		Underlying: underlying,
		Attrs:      attrs,
		Doc:        doc,
		Scope:      p.currentScope(),
		Span:       span,
	})
	return def, true
}
