package token

var keywords = map[string]Kind{
	"module":     KwModule,
	"struct":     KwStruct,
	"compact":    KwCompact,
	"class":      KwClass,
	"exception":  KwException,
	"interface":  KwInterface,
	"enum":       KwEnum,
	"unchecked":  KwUnchecked,
	"custom":     KwCustom,
	"typealias":  KwTypealias,
	"sequence":   KwSequence,
	"dictionary": KwDictionary,
	"tag":        KwTag,
	"stream":     KwStream,
	"extends":    KwExtends,
	"throws":     KwThrows,
	"idempotent": KwIdempotent,
	"oneway":     KwOneway,
	"void":       KwVoid,
	"encoding":   KwEncoding,
}

// LookupKeyword returns the keyword Kind for ident, if any.
// Keywords are case-sensitive: only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
