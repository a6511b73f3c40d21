package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/token"
)

// parseFieldList parses a brace-delimited, comma-separated field list shared
// by struct, class, and exception bodies: `{ field (, field)* ,? }`, where
// each field is `doc? attrs? Ident ':' tag? TypeRef`.
func (p *Parser) parseFieldList(parent ast.DefID) []ast.FieldID {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open a field list"); !ok {
		return nil
	}
	var fields []ast.FieldID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		field, ok := p.parseField(parent)
		if ok {
			fields = append(fields, field)
		} else {
			p.resyncField()
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close a field list")
	return fields
}

func (p *Parser) parseField(parent ast.DefID) (ast.FieldID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoFieldID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after a field name"); !ok {
		return ast.NoFieldID, false
	}
	tag := p.parseTag()
	dataType := p.parseTypeRef()

	span := nameSpan
	if ref := p.store.TypeRefs.Get(uint32(dataType)); ref != nil {
		span = span.Cover(ref.Span)
	}
	id := p.store.NewField(ast.Field{
		Identifier: name,
		DataType:   dataType,
		Tag:        tag,
		Attrs:      attrs,
		Doc:        doc,
		Parent:     parent,
		Span:       span,
	})
	return id, true
}

// resyncField recovers from a malformed field by skipping to the next ',' or
// the list-closing '}'.
func (p *Parser) resyncField() {
	for !p.atOr(token.Comma, token.RBrace, token.EOF) {
		p.advance()
	}
}
