package diag

import "fmt"

// Code is a stable, numeric diagnostic identifier. Ranges group codes by
// compiler stage: 1000s lexical, 2000s syntax, 3000s semantic/validation,
// 4000s I/O and project configuration.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005

	// Syntax.
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnclosedParen         Code = 2002
	SynUnclosedBrace         Code = 2003
	SynUnclosedBracket       Code = 2004
	SynUnclosedAngleBracket  Code = 2005
	SynExpectSemicolon       Code = 2006
	SynExpectIdentifier      Code = 2007
	SynExpectModuleSeg       Code = 2008
	SynMultipleCompilationModes Code = 2009
	SynInvalidCompilationMode   Code = 2010
	SynInvalidIntegerLiteral    Code = 2011
	SynDocCommentNotAllowed     Code = 2012
	SynPreprocUnexpectedDirective Code = 2013
	SynPreprocUnterminatedIf      Code = 2014
	SynPreprocUnknownDirective    Code = 2015

	// Semantic / validation.
	SemRedefinition                         Code = 3000
	SemUnresolved                           Code = 3001
	SemKeyTypeNotSupported                  Code = 3002
	SemKeyMustBeNonOptional                 Code = 3003
	SemStructKeyMustBeCompact               Code = 3004
	SemUnsupportedType                      Code = 3005
	SemTagValueOutOfBounds                  Code = 3006
	SemCompactIdOutOfBounds                 Code = 3007
	SemIntegerLiteralOverflows              Code = 3008
	SemReturnTuplesMustContainAtLeastTwo    Code = 3009
	SemStreamedParameterNotLast             Code = 3010
	SemTooManyStreamedParameters            Code = 3011
	SemArgumentNotSupported                 Code = 3012
	SemTooManyArguments                     Code = 3013
	SemMissingRequiredArgument               Code = 3014
	SemInvalidWarningCode                   Code = 3015
	SemCycleDetected                        Code = 3016
	SemDuplicateEnumeratorValue              Code = 3017
	SemEnumeratorValueOutOfRange             Code = 3018
	SemShadowsInheritedMember                Code = 3019
	SemAttributeDuplicate                    Code = 3020
	SemDeprecatedUsage                       Code = 3021
	SemDocUnknownParam                       Code = 3022
	SemDocUnknownThrows                      Code = 3023
	SemDocUnknownLink                        Code = 3024
	SemThrowsTargetNotException              Code = 3025
	SemOnewayMustNotReturn                   Code = 3026
	SemOnewayMustNotThrow                    Code = 3027
	SemTagTypeNotOptionalOrClass              Code = 3028
	SemDuplicateTagValue                    Code = 3029

	// I/O / project.
	IoFileNotFound       Code = 4000
	IoFileReadFailed     Code = 4001
	IoManifestMalformed  Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexical note",
	LexUnknownChar:              "unrecognized character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	LexTokenTooLong:             "token exceeds the maximum allowed length",

	SynInfo:                       "syntax note",
	SynUnexpectedToken:            "unexpected token",
	SynUnclosedParen:              "unclosed '('",
	SynUnclosedBrace:              "unclosed '{'",
	SynUnclosedBracket:            "unclosed '['",
	SynUnclosedAngleBracket:       "unclosed '<'",
	SynExpectSemicolon:            "expected ';'",
	SynExpectIdentifier:           "expected an identifier",
	SynExpectModuleSeg:            "expected a module path segment",
	SynMultipleCompilationModes:   "multiple compilation mode directives in one file",
	SynInvalidCompilationMode:     "invalid compilation mode",
	SynInvalidIntegerLiteral:      "invalid integer literal",
	SynDocCommentNotAllowed:       "doc comment is not allowed here",
	SynPreprocUnexpectedDirective: "unexpected preprocessor directive",
	SynPreprocUnterminatedIf:      "unterminated #if block",
	SynPreprocUnknownDirective:    "unknown preprocessor directive",

	SemRedefinition:                      "redefinition of an existing identifier",
	SemUnresolved:                        "unresolved type or entity reference",
	SemKeyTypeNotSupported:               "dictionary key type is not supported",
	SemKeyMustBeNonOptional:              "dictionary key type must not be optional",
	SemStructKeyMustBeCompact:            "struct used as a dictionary key must be compact",
	SemUnsupportedType:                   "type is not supported under the file's compilation mode",
	SemTagValueOutOfBounds:               "tag value is out of bounds",
	SemCompactIdOutOfBounds:              "compact id is out of bounds",
	SemIntegerLiteralOverflows:           "integer literal overflows its target range",
	SemReturnTuplesMustContainAtLeastTwo: "return tuples must contain at least two elements",
	SemStreamedParameterNotLast:          "a streamed parameter must be the last parameter",
	SemTooManyStreamedParameters:         "an operation may declare at most one streamed parameter",
	SemArgumentNotSupported:              "attribute argument is not supported",
	SemTooManyArguments:                  "too many attribute arguments",
	SemMissingRequiredArgument:           "missing required attribute argument",
	SemInvalidWarningCode:                "invalid warning code",
	SemCycleDetected:                     "cyclic value-type containment detected",
	SemDuplicateEnumeratorValue:          "duplicate enumerator value",
	SemEnumeratorValueOutOfRange:         "enumerator value is out of range for the underlying type",
	SemShadowsInheritedMember:            "member shadows an inherited member",
	SemAttributeDuplicate:                "attribute applied more than once",
	SemDeprecatedUsage:                   "use of a deprecated entity",
	SemDocUnknownParam:                   "@param tag does not match any parameter",
	SemDocUnknownThrows:                  "@throws tag does not match any declared exception",
	SemDocUnknownLink:                    "@see tag references an unknown entity",
	SemThrowsTargetNotException:          "a throws clause may only name exceptions",
	SemOnewayMustNotReturn:               "a oneway operation must not return anything",
	SemOnewayMustNotThrow:                "a oneway operation must not declare a throws clause",
	SemTagTypeNotOptionalOrClass:         "a tagged field or parameter's type must be optional or a class",
	SemDuplicateTagValue:                 "duplicate tag value in this container",

	IoFileNotFound:      "source file not found",
	IoFileReadFailed:    "failed to read source file",
	IoManifestMalformed: "malformed slice.toml manifest",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
