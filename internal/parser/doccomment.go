package parser

import (
	"strings"

	"slicec/internal/ast"
	"slicec/internal/diag"
	"slicec/internal/source"
	"slicec/internal/token"
)

// parseLeadingDoc extracts and interns the doc comment attached as leading
// trivia to tok, if any. It never consumes tokens; it only inspects trivia
// the lexer has already attached to the upcoming token.
func (p *Parser) parseLeadingDoc(tok token.Token) ast.DocCommentID {
	doc, ok := extractDoc(tok.Leading)
	if !ok {
		return ast.NoDocCommentID
	}
	return p.store.NewDocComment(doc)
}

// rejectDoc reports that a doc comment is not allowed on this construct
// (spec.md §6.3: modules, parameters, and return members never carry one),
// suggesting an alternative when one exists.
func (p *Parser) rejectDoc(tok token.Token, alternative string) {
	if _, ok := extractDoc(tok.Leading); !ok {
		return
	}
	msg := "doc comments are not allowed here"
	if alternative != "" {
		msg += "; " + alternative
	}
	p.report(diag.SynDocCommentNotAllowed, tok.Span, msg)
}

// extractDoc collapses a token's leading doc trivia (one or more consecutive
// "///" lines, or a single "/** */" block) into a DocComment, splitting the
// body into a summary paragraph and @param/@returns/@throws/@see tags.
func extractDoc(leading []token.Trivia) (ast.DocComment, bool) {
	var lines []string
	var span token.Trivia
	found := false
	for _, t := range leading {
		if !t.IsDoc() {
			continue
		}
		if !found {
			span = t
			found = true
		} else {
			span.Span = span.Span.Cover(t.Span)
		}
		lines = append(lines, docLines(t)...)
	}
	if !found {
		return ast.DocComment{}, false
	}

	var summary strings.Builder
	var tags []ast.DocCommentTag
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") {
			if tag, ok := parseDocTag(trimmed, span.Span); ok {
				tags = append(tags, tag)
			}
			continue
		}
		if summary.Len() > 0 {
			summary.WriteByte('\n')
		}
		summary.WriteString(trimmed)
	}
	return ast.DocComment{Summary: strings.TrimSpace(summary.String()), Tags: tags, Span: span.Span}, true
}

// docLines splits one trivia element (a "///" line or a "/** */" block) into
// its constituent content lines, with comment markers stripped.
func docLines(t token.Trivia) []string {
	text := t.Text
	switch t.Kind {
	case token.TriviaDocLine:
		text = strings.TrimPrefix(text, "///")
		return []string{text}
	case token.TriviaDocBlock:
		text = strings.TrimPrefix(text, "/**")
		text = strings.TrimSuffix(text, "*/")
		rawLines := strings.Split(text, "\n")
		out := make([]string, 0, len(rawLines))
		for _, l := range rawLines {
			l = strings.TrimSpace(l)
			l = strings.TrimPrefix(l, "*")
			out = append(out, l)
		}
		return out
	default:
		return nil
	}
}

// parseDocTag recognizes "@param name text", "@returns text",
// "@throws Type text", and "@see target" (spec.md §6.3). Every recognized
// tag shares the doc comment's overall span, since trivia carries no
// per-line position of its own.
func parseDocTag(line string, span source.Span) (ast.DocCommentTag, bool) {
	rest, ok := strings.CutPrefix(line, "@")
	if !ok {
		return ast.DocCommentTag{}, false
	}
	word, body, hasBody := strings.Cut(rest, " ")
	body = strings.TrimSpace(body)

	switch word {
	case "param":
		name, text, _ := strings.Cut(body, " ")
		name = strings.TrimSuffix(name, ":")
		return ast.DocCommentTag{Kind: ast.DocTagParam, Target: name, Text: strings.TrimSpace(text), Span: span}, true
	case "returns":
		return ast.DocCommentTag{Kind: ast.DocTagReturns, Text: body, Span: span}, true
	case "throws":
		name, text, _ := strings.Cut(body, " ")
		name = strings.TrimSuffix(name, ":")
		return ast.DocCommentTag{Kind: ast.DocTagThrows, Target: name, Text: strings.TrimSpace(text), Span: span}, true
	case "see":
		if !hasBody {
			return ast.DocCommentTag{}, false
		}
		return ast.DocCommentTag{Kind: ast.DocTagSee, Target: body, Span: span}, true
	default:
		return ast.DocCommentTag{}, false
	}
}
