package parser

import (
	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
	"slicec/internal/token"
)

// parseModule parses a module definition in either of its two forms
// (spec.md §4.4): a braced body, `module A::B::C { definition* }`, or a
// semicolon-terminated whole-file form, `module A::B::C;`, under which every
// remaining definition in the file belongs to the module. A multi-segment
// path is expanded into chained single-identifier modules; only the
// innermost carries the attributes written at the declaration site. A doc
// comment before a module is reported as not allowed and is not stored.
func (p *Parser) parseModule() (ast.DefID, bool) {
	p.rejectDoc(p.lx.Peek(), "")
	doc := ast.NoDocCommentID
	attrs := p.parseAttributeList()

	kw := p.advance() // 'module'
	segments, _, pathSpan, ok := p.parseScopedIdent()
	if !ok {
		return ast.DefID{}, false
	}

	switch {
	case p.at(token.Semicolon):
		semi := p.advance()
		return p.buildWholeFileModule(segments, attrs, doc, kw.Span.Cover(semi.Span))
	default:
		return p.buildNestedModule(segments, attrs, doc, kw.Span.Cover(pathSpan))
	}
}

// buildNestedModule opens len(segments)-1 plain wrapper modules, then parses
// the braced body into the innermost one, which carries attrs.
func (p *Parser) buildNestedModule(segments []string, attrs []ast.AttrID, doc ast.DocCommentID, span source.Span) (ast.DefID, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open a module body"); !ok {
		return ast.DefID{}, false
	}

	outerDefs := make([]func(inner ast.DefID) (ast.ModuleID, ast.DefID), 0, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		seg := seg
		nameID := p.store.Strings.Intern(seg)
		p.pushModuleScope(nameID, span)
		scope := p.currentScope()
		outerDefs = append(outerDefs, func(inner ast.DefID) (ast.ModuleID, ast.DefID) {
			idx, def := p.store.NewModule(ast.Module{
				Identifier:  seg,
				Definitions: []ast.DefID{inner},
				Scope:       scope,
				Span:        span,
			})
			return idx, def
		})
	}

	last := segments[len(segments)-1]
	lastID := p.store.Strings.Intern(last)
	p.pushModuleScope(lastID, span)
	innerScope := p.currentScope()

	var defs []ast.DefID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.lx.Peek()
		def, ok := p.parseDefinition()
		if ok {
			defs = append(defs, def)
		} else {
			p.resyncTop()
		}
		if !p.at(token.EOF) {
			after := p.lx.Peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close a module body")
	p.popModuleScope()

	innerIdx, innerDef := p.store.NewModule(ast.Module{
		Identifier:  last,
		Attrs:       attrs,
		Doc:         doc,
		Definitions: defs,
		Scope:       innerScope,
		Span:        span,
	})

	result := innerDef
	childIdx := innerIdx
	for i := len(outerDefs) - 1; i >= 0; i-- {
		parentIdx, parentDef := outerDefs[i](result)
		p.store.Modules.Get(uint32(childIdx)).Parent = parentIdx
		result = parentDef
		childIdx = parentIdx
		p.popModuleScope()
	}
	return result, true
}

// buildWholeFileModule opens len(segments)-1 wrapper modules, then parses
// every remaining top-level definition into the innermost one.
func (p *Parser) buildWholeFileModule(segments []string, attrs []ast.AttrID, doc ast.DocCommentID, span source.Span) (ast.DefID, bool) {
	for _, seg := range segments[:len(segments)-1] {
		nameID := p.store.Strings.Intern(seg)
		p.pushModuleScope(nameID, span)
	}
	last := segments[len(segments)-1]
	lastID := p.store.Strings.Intern(last)
	p.pushModuleScope(lastID, span)
	innerScope := p.currentScope()

	var defs []ast.DefID
	for !p.at(token.EOF) {
		before := p.lx.Peek()
		def, ok := p.parseDefinition()
		if ok {
			defs = append(defs, def)
		} else {
			p.resyncTop()
		}
		if !p.at(token.EOF) {
			after := p.lx.Peek()
			if after.Kind == before.Kind && after.Span == before.Span {
				p.advance()
			}
		}
	}

	innerIdx, innerDef := p.store.NewModule(ast.Module{
		Identifier:  last,
		Attrs:       attrs,
		Doc:         doc,
		Definitions: defs,
		Scope:       innerScope,
		Span:        span,
	})

	result := innerDef
	childIdx := innerIdx
	for i := len(segments) - 2; i >= 0; i-- {
		p.popModuleScope()
		seg := segments[i]
		scope := p.currentScope()
		wrapIdx, wrapDef := p.store.NewModule(ast.Module{
			Identifier:  seg,
			Definitions: []ast.DefID{result},
			Scope:       scope,
			Span:        span,
		})
		p.store.Modules.Get(uint32(childIdx)).Parent = wrapIdx
		result = wrapDef
		childIdx = wrapIdx
	}
	p.popModuleScope()
	return result, true
}
