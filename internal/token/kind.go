package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token, including primitive type names.
	Ident

	// KwModule represents the 'module' keyword.
	KwModule
	// KwStruct represents the 'struct' keyword.
	KwStruct
	// KwCompact represents the 'compact' keyword.
	KwCompact
	// KwClass represents the 'class' keyword.
	KwClass
	// KwException represents the 'exception' keyword.
	KwException
	// KwInterface represents the 'interface' keyword.
	KwInterface
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwUnchecked represents the 'unchecked' keyword.
	KwUnchecked
	// KwCustom represents the 'custom' keyword.
	KwCustom
	// KwTypealias represents the 'typealias' keyword.
	KwTypealias
	// KwSequence represents the 'sequence' keyword.
	KwSequence
	// KwDictionary represents the 'dictionary' keyword.
	KwDictionary
	// KwTag represents the 'tag' keyword.
	KwTag
	// KwStream represents the 'stream' keyword.
	KwStream
	// KwExtends represents the 'extends' keyword.
	KwExtends
	// KwThrows represents the 'throws' keyword.
	KwThrows
	// KwIdempotent represents the 'idempotent' keyword.
	KwIdempotent
	// KwOneway represents the 'oneway' keyword.
	KwOneway
	// KwVoid represents the 'void' keyword.
	KwVoid
	// KwEncoding represents the contextual 'encoding' keyword used in the
	// file-level "encoding = Slice1|Slice2" declaration.
	KwEncoding

	// IntLit represents an integer literal (decimal, 0x, or 0b, underscores ignored).
	IntLit
	// StringLit represents a quoted string literal (attribute arguments).
	StringLit

	// Assign represents '='.
	Assign
	// Comma represents ','.
	Comma
	// Semicolon represents ';'.
	Semicolon
	// Colon represents ':'.
	Colon
	// ColonColon represents '::'.
	ColonColon
	// Question represents '?'.
	Question
	// Arrow represents '->', separating an operation's parameter list from its return type.
	Arrow
	// Lt represents '<', also used to open sequence<T>/dictionary<K,V> type arguments.
	Lt
	// Gt represents '>', also used to close type arguments.
	Gt
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '[', opens an attribute list (or '[[' a file attribute).
	LBracket
	// RBracket represents ']'.
	RBracket
	// Hash represents '#', the lead character of a preprocessor directive.
	Hash
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case KwModule:
		return "module"
	case KwStruct:
		return "struct"
	case KwCompact:
		return "compact"
	case KwClass:
		return "class"
	case KwException:
		return "exception"
	case KwInterface:
		return "interface"
	case KwEnum:
		return "enum"
	case KwUnchecked:
		return "unchecked"
	case KwCustom:
		return "custom"
	case KwTypealias:
		return "typealias"
	case KwSequence:
		return "sequence"
	case KwDictionary:
		return "dictionary"
	case KwTag:
		return "tag"
	case KwStream:
		return "stream"
	case KwExtends:
		return "extends"
	case KwThrows:
		return "throws"
	case KwIdempotent:
		return "idempotent"
	case KwOneway:
		return "oneway"
	case KwVoid:
		return "void"
	case KwEncoding:
		return "encoding"
	case IntLit:
		return "IntLit"
	case StringLit:
		return "StringLit"
	case Assign:
		return "="
	case Comma:
		return ","
	case Semicolon:
		return ";"
	case Colon:
		return ":"
	case ColonColon:
		return "::"
	case Question:
		return "?"
	case Arrow:
		return "->"
	case Lt:
		return "<"
	case Gt:
		return ">"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Hash:
		return "#"
	default:
		return "Unknown"
	}
}
