package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/token"
)

// parseAttributeList parses zero or more consecutive entity-level
// `[directive(args)]` attribute brackets preceding a definition, field,
// parameter, or enumerator (spec.md §6.3).
func (p *Parser) parseAttributeList() []ast.AttrID {
	var attrs []ast.AttrID
	for p.at(token.LBracket) {
		attrs = append(attrs, p.parseOneAttr(false))
	}
	return attrs
}

// parseFileAttribute parses one `[[directive(args)]]` file-level attribute.
// The caller has already confirmed the second '[' via peekSecondIsFileAttrOpen.
func (p *Parser) parseFileAttribute() ast.AttrID {
	open := p.advance() // first '['
	p.expect(token.LBracket, diag.SynUnexpectedToken, "expected '[[' to open a file attribute")
	id := p.parseAttrBody(open, true)
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close a file attribute")
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']]' to close a file attribute")
	return id
}

func (p *Parser) parseOneAttr(fileLevel bool) ast.AttrID {
	open := p.advance() // '['
	id := p.parseAttrBody(open, fileLevel)
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close an attribute")
	return id
}

// parseAttrBody parses `directive ( arg (, arg)* )?` after the opening
// bracket(s) have already been consumed.
func (p *Parser) parseAttrBody(open token.Token, fileLevel bool) ast.AttrID {
	name, nameSpan, ok := p.parseIdent()
	span := open.Span.Cover(nameSpan)
	if !ok {
		return p.store.NewAttr(ast.Attr{FileLevel: fileLevel, Span: span})
	}

	var args []ast.AttrArg
	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) && !p.at(token.EOF) {
			arg, argOk := p.parseAttrArg()
			if argOk {
				args = append(args, arg)
				span = span.Cover(arg.Span)
			}
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		if closed, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close attribute arguments"); ok {
			span = span.Cover(closed.Span)
		}
	}

	directive := p.store.Strings.Intern(name)
	return p.store.NewAttr(ast.Attr{Directive: directive, Args: args, FileLevel: fileLevel, Span: span})
}

func (p *Parser) parseAttrArg() (ast.AttrArg, bool) {
	switch p.lx.Peek().Kind {
	case token.StringLit:
		tok := p.advance()
		return ast.AttrArg{Kind: ast.AttrArgString, Text: tok.Text, Span: tok.Span}, true
	case token.Ident:
		tok := p.advance()
		return ast.AttrArg{Kind: ast.AttrArgIdent, Text: tok.Text, Span: tok.Span}, true
	default:
		p.report(diag.SynUnexpectedToken, p.errSpan(), "expected an attribute argument (identifier or string literal)")
		return ast.AttrArg{}, false
	}
}
