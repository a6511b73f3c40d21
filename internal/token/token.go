package token

import "slicec/internal/source"

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is an integer or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation rather than an identifier/keyword/literal.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Assign, Comma, Semicolon, Colon, ColonColon, Question, Arrow, Lt, Gt,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, Hash:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a Slice structural keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwModule, KwStruct, KwCompact, KwClass, KwException, KwInterface, KwEnum,
		KwUnchecked, KwCustom, KwTypealias, KwSequence, KwDictionary, KwTag, KwStream,
		KwExtends, KwThrows, KwIdempotent, KwOneway, KwVoid, KwEncoding:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
