package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/token"
)

// parseFileAttributesAndEncoding consumes the optional leading
// `encoding = Slice1|Slice2;` directive (spec.md §6.3) and any interleaved
// file-level `[[directive]]` attributes, recording the directive on unit.
// A single-bracket `[directive]` seen here belongs to the first definition
// instead, so it is left unconsumed for parseDefinition's attribute parser.
func (p *Parser) parseFileAttributesAndEncoding(unit *ast.CompilationUnit) []ast.AttrID {
	var attrs []ast.AttrID
	for {
		switch {
		case p.at(token.KwEncoding):
			p.parseEncodingDirective(unit)
		case p.at(token.LBracket) && p.peekSecondIsFileAttrOpen():
			attrs = append(attrs, p.parseFileAttribute())
		default:
			return attrs
		}
	}
}

// peekSecondIsFileAttrOpen consumes the leading '[' to look one token
// further ahead, then pushes it back: true only if the second token is also
// '[', the file-level attribute opener.
func (p *Parser) peekSecondIsFileAttrOpen() bool {
	first := p.lx.Next()
	second := p.at(token.LBracket)
	p.lx.Push(first)
	return second
}

func (p *Parser) parseEncodingDirective(unit *ast.CompilationUnit) {
	kw := p.advance()
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after 'encoding'"); !ok {
		return
	}
	name, nameSpan, ok := p.parseIdent()
	span := kw.Span.Cover(nameSpan)
	if unit.EncodingDeclared {
		p.reportWithNote(diag.SynMultipleCompilationModes, span,
			"multiple compilation mode directives in one file",
			unit.EncodingSpan, "the compilation mode was previously specified here")
	} else {
		unit.EncodingDeclared = true
		unit.EncodingSpan = span
		if ok {
			switch name {
			case "Slice1":
				unit.Encoding = ast.EncodingSlice1
			case "Slice2":
				unit.Encoding = ast.EncodingSlice2
			default:
				p.report(diag.SynInvalidCompilationMode, nameSpan, "compilation mode must be 'Slice1' or 'Slice2', got \""+name+"\"")
				unit.Encoding = ast.EncodingSlice2
			}
		}
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after the encoding directive")
}
