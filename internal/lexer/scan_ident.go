package lexer

import "slicec/internal/token"

// scanIdentOrKeyword scans an [Ident] and maps it through LookupKeyword.
// Slice keywords are case-sensitive, so the lexeme is looked up exactly as
// written: Token.Text is always the unmodified source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]

	if k, ok := token.LookupKeyword(string(lex)); ok {
		return token.Token{Kind: k, Span: sp, Text: string(lex)}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: string(lex)}
}

const utf8RuneSelf = 0x80
