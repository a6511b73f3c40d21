package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/token"
)

// parseInterface parses `interface Ident [extends Base (, Base)*] { operation* }`
// (spec.md §4.4).
func (p *Parser) parseInterface() (ast.DefID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	kw := p.advance() // 'interface'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.DefID{}, false
	}

	var bases []ast.TypeRefID
	if p.at(token.KwExtends) {
		p.advance()
		bases = append(bases, p.parseTypeRef())
		for p.at(token.Comma) {
			p.advance()
			bases = append(bases, p.parseTypeRef())
		}
	}

	nameID := p.store.Strings.Intern(name)
	scope := p.pushNamedScope(nameID, nameSpan)
	defer p.popNamedScope()

	idx, def, _ := p.store.NewInterface(ast.Interface{
		Identifier: name,
		Bases:      bases,
		Attrs:      attrs,
		Doc:        doc,
		Scope:      scope,
		Span:       kw.Span,
	})

	ops := p.parseOperationList(ast.InterfaceID(idx))
	iface := p.store.Interfaces.Get(uint32(idx))
	iface.Operations = ops
	iface.Span = iface.Span.Cover(p.lastSpan)
	return def, true
}

func (p *Parser) parseOperationList(parent ast.InterfaceID) []ast.OperationID {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open an interface body"); !ok {
		return nil
	}
	var ops []ast.OperationID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.lx.Peek()
		id, ok := p.parseOperation(parent)
		if ok {
			ops = append(ops, id)
		} else {
			p.resyncOperation()
		}
		if !p.at(token.EOF) {
			after := p.lx.Peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close an interface body")
	return ops
}

func (p *Parser) resyncOperation() {
	for !p.atOr(token.RBrace, token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		p.advance()
	}
}

// parseOperation parses `[idempotent|oneway]* Ident '(' parameter* ')' ['->'
// return_type] ['throws' TypeRef (, TypeRef)*] ';'` (spec.md §4.4, §4.7). A
// oneway operation's "must return nothing and not throw" constraint is
// checked later, by internal/validate.
func (p *Parser) parseOperation(parent ast.InterfaceID) (ast.OperationID, bool) {
	docTok := p.lx.Peek()
	doc := p.parseLeadingDoc(docTok)
	attrs := p.parseAttributeList()

	isIdempotent := false
	isOneway := false
	for p.at(token.KwIdempotent) || p.at(token.KwOneway) {
		if p.at(token.KwIdempotent) {
			p.advance()
			isIdempotent = true
		} else {
			p.advance()
			isOneway = true
		}
	}

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoOperationID, false
	}
	span := nameSpan

	// Allocated now so parameters and return members can carry their real
	// Parent id; its Parameters/ReturnMembers/Span are filled in below once
	// the rest of the signature has been parsed.
	id := p.store.NewOperation(ast.Operation{
		Identifier:   name,
		IsIdempotent: isIdempotent,
		IsOneway:     isOneway,
		Attrs:        attrs,
		Doc:          doc,
		Parent:       parent,
	})

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after an operation name"); !ok {
		return id, false
	}
	var params []ast.ParameterID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		pid, okP := p.parseParameter(id, false)
		if okP {
			params = append(params, pid)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if closed, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close a parameter list"); ok {
		span = span.Cover(closed.Span)
	}

	var returns []ast.ParameterID
	if p.at(token.Arrow) {
		p.advance()
		returns = p.parseReturnType(id)
	}

	var throws []ast.TypeRefID
	if p.at(token.KwThrows) {
		p.advance()
		throws = append(throws, p.parseTypeRef())
		for p.at(token.Comma) {
			p.advance()
			throws = append(throws, p.parseTypeRef())
		}
	}

	if semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after an operation"); ok {
		span = span.Cover(semi.Span)
	}

	op := p.store.Operations.Get(uint32(id))
	op.Parameters = params
	op.ReturnMembers = returns
	op.Throws = throws
	op.Span = span
	return id, true
}

// parseReturnType parses either a single type (wrapped in a dummy
// "returnValue" member) or a parenthesized tuple of named return members,
// which must contain at least two (spec.md §4.7).
func (p *Parser) parseReturnType(parent ast.OperationID) []ast.ParameterID {
	if p.at(token.KwVoid) {
		p.advance()
		return nil
	}
	if !p.at(token.LParen) {
		dataType := p.parseTypeRef()
		id := p.store.NewParameter(ast.Parameter{
			Identifier: "returnValue",
			DataType:   dataType,
			IsReturned: true,
			Parent:     parent,
		})
		return []ast.ParameterID{id}
	}

	open := p.advance()
	var members []ast.ParameterID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		pid, ok := p.parseParameter(parent, true)
		if ok {
			members = append(members, pid)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close a return tuple")
	if len(members) < 2 {
		p.report(diag.SemReturnTuplesMustContainAtLeastTwo, open.Span, "a return tuple must name at least two members")
	}
	return members
}

// parseParameter parses `Ident ':' [tag(N)] ['stream'] TypeRef`. Doc
// comments are rejected here: a parameter's documentation belongs in the
// operation's own doc comment as an `@param` tag (spec.md §6.3).
func (p *Parser) parseParameter(parent ast.OperationID, isReturned bool) (ast.ParameterID, bool) {
	p.rejectDoc(p.lx.Peek(), "use an @param tag on the operation's doc comment instead")

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoParameterID, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after a parameter name"); !ok {
		return ast.NoParameterID, false
	}
	tag := p.parseTag()
	streamed := false
	if p.at(token.KwStream) {
		p.advance()
		streamed = true
	}
	dataType := p.parseTypeRef()

	span := nameSpan
	if ref := p.store.TypeRefs.Get(uint32(dataType)); ref != nil {
		span = span.Cover(ref.Span)
	}
	id := p.store.NewParameter(ast.Parameter{
		Identifier: name,
		DataType:   dataType,
		Tag:        tag,
		IsStreamed: streamed,
		IsReturned: isReturned,
		Parent:     parent,
		Span:       span,
	})
	return id, true
}
