package lexer

import (
	"slicec/internal/diag"
	"slicec/internal/token"
)

// scanNumber scans an integer literal: 0b[01_]*, 0x[0-9a-fA-F_]*, or a plain
// decimal [0-9][0-9_]*. Slice has no floating-point literals; underscores are
// permitted as digit separators anywhere in the digit run and are ignored by
// later stages when computing the literal's value. A 0b/0x prefix with no
// digits after it still lexes as IntLit; the parser rejects it when it
// converts the value.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			for {
				b := lx.cursor.Peek()
				if b == '0' || b == '1' || b == '_' {
					lx.cursor.Bump()
				} else {
					break
				}
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		case 'x', 'X':
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		default:
			// plain "0", possibly followed by more decimal digits.
		}
	}

	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.Start == sp.End {
		lx.errLex(diag.LexBadNumber, sp, "expected a digit")
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
