package parser

import (
	"strconv"
	"strings"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
	"slicec/internal/token"
)

// parseTypeRef parses one type reference: a scoped identifier, or an
// anonymous `sequence<T>`/`dictionary<K, V>` construction, followed by an
// optional trailing '?' marking it nullable (spec.md §4.4).
func (p *Parser) parseTypeRef() ast.TypeRefID {
	switch {
	case p.at(token.KwSequence):
		return p.parseSequenceType()
	case p.at(token.KwDictionary):
		return p.parseDictionaryType()
	default:
		return p.parseNamedTypeRef()
	}
}

func (p *Parser) parseNamedTypeRef() ast.TypeRefID {
	segments, absolute, span, ok := p.parseScopedIdent()
	if !ok {
		return p.store.NewTypeRef("", false, p.scopeRef(absolute), span)
	}
	identifier := strings.Join(segments, "::")
	if absolute {
		identifier = "::" + identifier
	}
	optional, span := p.parseOptionalSuffix(span)
	return p.store.NewTypeRef(identifier, optional, p.scopeRef(absolute), span)
}

func (p *Parser) parseSequenceType() ast.TypeRefID {
	kw := p.advance()
	span := kw.Span
	if _, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "expected '<' after 'sequence'"); !ok {
		return p.newInlineTypeRef(ast.TypeID{}, false, span)
	}
	elem := p.parseTypeRef()
	if closed, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close a sequence type"); ok {
		span = span.Cover(closed.Span)
	}
	id := p.store.NewSequence(ast.Sequence{Element: elem, Span: span})
	optional, span := p.parseOptionalSuffix(span)
	return p.newInlineTypeRef(id, optional, span)
}

func (p *Parser) parseDictionaryType() ast.TypeRefID {
	kw := p.advance()
	span := kw.Span
	if _, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "expected '<' after 'dictionary'"); !ok {
		return p.newInlineTypeRef(ast.TypeID{}, false, span)
	}
	key := p.parseTypeRef()
	p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' between dictionary key and value types")
	value := p.parseTypeRef()
	if closed, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close a dictionary type"); ok {
		span = span.Cover(closed.Span)
	}
	id := p.store.NewDictionary(ast.Dictionary{Key: key, Value: value, Span: span})
	optional, span := p.parseOptionalSuffix(span)
	return p.newInlineTypeRef(id, optional, span)
}

func (p *Parser) parseOptionalSuffix(span source.Span) (bool, source.Span) {
	if p.at(token.Question) {
		tok := p.advance()
		return true, span.Cover(tok.Span)
	}
	return false, span
}

// newInlineTypeRef allocates a TypeRef that is already resolved: used for
// anonymous sequence/dictionary types, which have no name for the resolver
// to look up later.
func (p *Parser) newInlineTypeRef(def ast.TypeID, optional bool, sp source.Span) ast.TypeRefID {
	id := p.store.NewTypeRef("", optional, ast.ScopeRef{}, sp)
	r := p.store.TypeRefs.Get(uint32(id))
	r.State = ast.Patched
	r.Definition = def
	return id
}

// parseTag parses an optional `tag(N)` modifier preceding a field or
// parameter's type, per spec.md §4.4. A value outside int32 range is
// reported and replaced with a dummy 0 so parsing can continue.
func (p *Parser) parseTag() *int32 {
	if !p.at(token.KwTag) {
		return nil
	}
	p.advance()
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'tag'")
	n, span, ok := p.parseInteger()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close a tag value")
	if !ok {
		zero := int32(0)
		return &zero
	}
	if n < 0 || n > int64(1<<31-1) {
		p.report(diag.SemTagValueOutOfBounds, span, "tag value must fit in a non-negative 32-bit integer")
		zero := int32(0)
		return &zero
	}
	v := int32(n)
	return &v
}

// parseInteger parses a decimal, 0x, or 0b integer literal with '_'
// separators ignored (spec.md §4.4).
func (p *Parser) parseInteger() (int64, source.Span, bool) {
	if !p.at(token.IntLit) {
		p.report(diag.SynExpectIdentifier, p.errSpan(), "expected an integer literal")
		return 0, p.errSpan(), false
	}
	tok := p.advance()
	text := strings.ReplaceAll(tok.Text, "_", "")

	var n int64
	var err error
	switch {
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		n, err = strconv.ParseInt(text[2:], 16, 64)
	case strings.HasPrefix(text, "0b"), strings.HasPrefix(text, "0B"):
		n, err = strconv.ParseInt(text[2:], 2, 64)
	default:
		n, err = strconv.ParseInt(text, 10, 64)
	}
	if err != nil {
		if strings.Contains(err.Error(), "range") {
			p.report(diag.SemIntegerLiteralOverflows, tok.Span, "integer literal \""+tok.Text+"\" overflows its target range")
		} else {
			p.report(diag.SynInvalidIntegerLiteral, tok.Span, "invalid integer literal \""+tok.Text+"\"")
		}
		return 0, tok.Span, false
	}
	return n, tok.Span, true
}
