// Package parser recognizes the Slice grammar (spec.md §4.4): an optional
// file-level encoding directive and file attributes, followed by zero or
// more definitions (module, struct, class, exception, interface, enum,
// custom type, type alias). It never aborts on a syntax error: it reports a
// diagnostic and substitutes a placeholder so downstream stages still run.
package parser

import (
	"slices"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
	"slicec/internal/symbols"
	"slicec/internal/token"
)

// TokenSource is the minimal contract the parser needs from its token
// stream: one token of lookahead plus consumption, matching the shape the
// lexer and the preprocessor both already implement.
type TokenSource interface {
	Next() token.Token
	Peek() token.Token
	Push(tok token.Token)
}

// Options configures a single ParseFile call.
type Options struct {
	Reporter diag.Reporter
}

// Result is the parse product for one file.
type Result struct {
	Unit *ast.CompilationUnit
}

// Parser holds the state for parsing one file into a shared ast.Store.
type Parser struct {
	lx       TokenSource
	store    *ast.Store
	scopes   *symbols.Scopes
	opts     Options
	lastSpan source.Span

	modulePath []source.StringID
	parserPath []source.StringID
	scopeStack []ast.ScopeID

	fileID source.FileID
}

// ParseFile parses one file's token stream into store, allocating scopes
// from scopes and reporting through opts.Reporter. It always returns a
// Result; a malformed file yields fewer definitions, never an error return.
func ParseFile(fileID source.FileID, lx TokenSource, store *ast.Store, scopes *symbols.Scopes, opts Options) Result {
	p := &Parser{
		lx:         lx,
		store:      store,
		scopes:     scopes,
		opts:       opts,
		scopeStack: []ast.ScopeID{ast.NoScopeID},
		fileID:     fileID,
	}

	unit := &ast.CompilationUnit{File: fileID, Encoding: ast.EncodingSlice2}
	unit.FileAttrs = p.parseFileAttributesAndEncoding(unit)

	for !p.at(token.EOF) {
		before := p.lx.Peek()
		def, ok := p.parseDefinition()
		if ok {
			unit.Definitions = append(unit.Definitions, def)
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

	store.AddUnit(unit)
	return Result{Unit: unit}
}

func (p *Parser) at(k token.Kind) bool { return p.lx.Peek().Kind == k }

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// expect consumes the next token if it matches k, else reports code and
// returns the zero Token with ok=false without consuming anything.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.report(code, p.errSpan(), msg)
	return token.Token{}, false
}

// errSpan returns a sensible span for "missing token here" diagnostics: the
// next token's span, or a zero-length span right after the last consumed
// token when the next token is EOF.
func (p *Parser) errSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (p *Parser) reportWithNote(code diag.Code, sp source.Span, msg string, noteSpan source.Span, noteMsg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, []diag.Note{{Span: noteSpan, Msg: noteMsg}})
	}
}

// parseIdent expects a plain identifier.
func (p *Parser) parseIdent() (string, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return tok.Text, tok.Span, true
	}
	p.report(diag.SynExpectIdentifier, p.errSpan(), "expected an identifier, got \""+p.lx.Peek().Text+"\"")
	return "", p.errSpan(), false
}

// parseScopedIdent parses `::`-separated path segments (Ident (:: Ident)*),
// reporting whether the path began with a leading '::' (an absolute path).
func (p *Parser) parseScopedIdent() (segments []string, absolute bool, span source.Span, ok bool) {
	if p.at(token.ColonColon) {
		absolute = true
		tok := p.advance()
		span = tok.Span
	}
	first, firstSpan, okFirst := p.parseIdent()
	if !okFirst {
		return nil, absolute, span, false
	}
	segments = append(segments, first)
	if span.Empty() {
		span = firstSpan
	} else {
		span = span.Cover(firstSpan)
	}
	for p.at(token.ColonColon) {
		p.advance()
		seg, segSpan, okSeg := p.parseIdent()
		if !okSeg {
			p.report(diag.SynExpectModuleSeg, p.errSpan(), "expected a module path segment after '::'")
			return segments, absolute, span, false
		}
		segments = append(segments, seg)
		span = span.Cover(segSpan)
	}
	return segments, absolute, span, true
}

func (p *Parser) currentScope() ast.ScopeID { return p.scopeStack[len(p.scopeStack)-1] }

// pushModuleScope allocates a new scope nested under the current one with
// name appended to both the module and parser paths, and pushes it.
func (p *Parser) pushModuleScope(name source.StringID, span source.Span) {
	p.modulePath = append(p.modulePath, name)
	p.parserPath = append(p.parserPath, name)
	id := p.scopes.New(p.currentScope(), slices.Clone(p.modulePath), slices.Clone(p.parserPath), false, span)
	p.scopeStack = append(p.scopeStack, id)
}

func (p *Parser) popModuleScope() {
	p.modulePath = p.modulePath[:len(p.modulePath)-1]
	p.parserPath = p.parserPath[:len(p.parserPath)-1]
	p.scopeStack = p.scopeStack[:len(p.scopeStack)-1]
}

// pushParserScope enters a named container (struct/interface/enum/…) that
// contributes to the parser-scoped entity namespace but not the
// module-scoped type namespace, per spec.md §3.3.
func (p *Parser) pushParserScope(name source.StringID) {
	p.parserPath = append(p.parserPath, name)
}

func (p *Parser) popParserScope() {
	p.parserPath = p.parserPath[:len(p.parserPath)-1]
}

// pushNamedScope enters a named container (struct/class/exception/interface/
// enum), extending the parser path and allocating a scope for it; unlike
// pushModuleScope it leaves the module path untouched, since only modules
// contribute to TypeRef outward-walk resolution (spec.md §3.3, §4.6).
func (p *Parser) pushNamedScope(name source.StringID, span source.Span) ast.ScopeID {
	p.pushParserScope(name)
	id := p.scopes.New(p.currentScope(), slices.Clone(p.modulePath), slices.Clone(p.parserPath), false, span)
	p.scopeStack = append(p.scopeStack, id)
	return id
}

func (p *Parser) popNamedScope() {
	p.popParserScope()
	p.scopeStack = p.scopeStack[:len(p.scopeStack)-1]
}

func (p *Parser) scopeRef(absolute bool) ast.ScopeRef {
	return ast.ScopeRef{
		ModuleScope: slices.Clone(p.modulePath),
		ParserScope: slices.Clone(p.parserPath),
		Absolute:    absolute,
	}
}

// parseDefinition dispatches on the next keyword to one of the eight
// definition kinds; unrecognized tokens are reported and skipped.
func (p *Parser) parseDefinition() (ast.DefID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwModule:
		return p.parseModule()
	case token.KwStruct, token.KwCompact:
		return p.parseStruct()
	case token.KwClass:
		return p.parseClass()
	case token.KwException:
		return p.parseException()
	case token.KwInterface:
		return p.parseInterface()
	case token.KwEnum, token.KwUnchecked:
		return p.parseEnum()
	case token.KwCustom:
		return p.parseCustomType()
	case token.KwTypealias:
		return p.parseTypeAlias()
	default:
		p.report(diag.SynUnexpectedToken, p.errSpan(),
			"expected a definition (module, struct, class, exception, interface, enum, custom, or typealias)")
		return ast.DefID{}, false
	}
}

var topLevelStarters = []token.Kind{
	token.KwModule, token.KwStruct, token.KwCompact, token.KwClass, token.KwException,
	token.KwInterface, token.KwEnum, token.KwUnchecked, token.KwCustom, token.KwTypealias,
}

// resyncTop recovers from a top-level parse failure by skipping tokens
// until the next definition starter, a '}' closing an enclosing block, or EOF.
func (p *Parser) resyncTop() {
	prev := p.lx.Peek()
	stop := append(append([]token.Kind{}, topLevelStarters...), token.EOF, token.RBrace)
	for !p.atOr(stop...) {
		p.advance()
	}
	if !p.at(token.EOF) && p.lx.Peek().Span == prev.Span && p.lx.Peek().Kind == prev.Kind {
		p.advance()
	}
}
