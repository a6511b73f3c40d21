package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/token"
)

// parseClass parses `class Ident [(compactId)] [extends Base] { field* }`
// (spec.md §4.4). Class is a Slice1-only construct; encoding feasibility is
// checked later by internal/encoding, not here.
func (p *Parser) parseClass() (ast.DefID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	kw := p.advance() // 'class'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.DefID{}, false
	}

	var compactID *int32
	if p.at(token.LParen) {
		p.advance()
		n, span, okN := p.parseInteger()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close a compact id")
		if okN {
			if n < 0 || n > int64(1<<31-1) {
				p.report(diag.SemCompactIdOutOfBounds, span, "compact id must fit in a non-negative 32-bit integer")
			} else {
				v := int32(n)
				compactID = &v
			}
		}
	}

	var base ast.TypeRefID
	if p.at(token.KwExtends) {
		p.advance()
		base = p.parseTypeRef()
	}

	nameID := p.store.Strings.Intern(name)
	scope := p.pushNamedScope(nameID, nameSpan)
	defer p.popNamedScope()

	idx, def, _ := p.store.NewClass(ast.Class{
		Identifier: name,
		CompactID:  compactID,
		Base:       base,
		Attrs:      attrs,
		Doc:        doc,
		Scope:      scope,
		Span:       kw.Span,
	})

	fields := p.parseFieldList(def)
	c := p.store.Classes.Get(uint32(idx))
	c.Fields = fields
	c.Span = c.Span.Cover(p.lastSpan)
	return def, true
}
