package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/token"
)

// parseEnum parses `[unchecked] enum Ident [: underlying] { enumerator
// (, enumerator)* }` (spec.md §4.4). Implicit enumerator values are the
// previous member's value plus one, or 0 for the first member.
func (p *Parser) parseEnum() (ast.DefID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	isUnchecked := false
	if p.at(token.KwUnchecked) {
		p.advance()
		isUnchecked = true
	}
	kw := p.advance() // 'enum'

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.DefID{}, false
	}

	var underlying ast.TypeRefID
	if p.at(token.Colon) {
		p.advance()
		underlying = p.parseTypeRef()
	}

	nameID := p.store.Strings.Intern(name)
	scope := p.pushNamedScope(nameID, nameSpan)
	defer p.popNamedScope()

	idx, def, _ := p.store.NewEnum(ast.Enum{
		Identifier: name,
		Underlying: underlying,
		IsUnchecked: isUnchecked,
		Attrs:       attrs,
		Doc:         doc,
		Scope:       scope,
		Span:        kw.Span,
	})

	enumerators := p.parseEnumeratorList(ast.EnumID(idx))
	e := p.store.Enums.Get(uint32(idx))
	e.Enumerators = enumerators
	e.Span = e.Span.Cover(p.lastSpan)
	return def, true
}

func (p *Parser) parseEnumeratorList(parent ast.EnumID) []ast.EnumeratorID {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open an enum body"); !ok {
		return nil
	}
	var enumerators []ast.EnumeratorID
	next := int64(0)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		id, value, ok := p.parseEnumerator(parent, next)
		if ok {
			enumerators = append(enumerators, id)
			next = value + 1
		} else {
			p.resyncField()
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close an enum body")
	return enumerators
}

func (p *Parser) parseEnumerator(parent ast.EnumID, implicit int64) (ast.EnumeratorID, int64, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoEnumeratorID, 0, false
	}

	value := ast.EnumValue{Explicit: false, Value: implicit}
	span := nameSpan
	if p.at(token.Assign) {
		p.advance()
		n, litSpan, okN := p.parseInteger()
		span = span.Cover(litSpan)
		if okN {
			value = ast.EnumValue{Explicit: true, Value: n}
		}
	}

	id, _ := p.store.NewEnumerator(ast.Enumerator{
		Identifier: name,
		Value:      value,
		Attrs:      attrs,
		Doc:        doc,
		Parent:     parent,
		Span:       span,
	})
	return id, value.Value, true
}
