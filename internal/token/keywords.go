package token

var keywords = map[string]Kind{
	"int":      KwInt,
	"float":    KwFloat,
	"string":   KwString,
	"bool":     KwBool,
	"if":       KwIf,
	"else":     KwElse,
	"elif":     KwElif,
	"while":    KwWhile,
	"for":      KwFor,
	"return":   KwReturn,
	"break":    KwBreak,
	"continue": KwContinue,
	"true":     KwTrue,
	"false":    KwFalse,
	"null":     KwNull,
	"const":    KwConst,
	"function": KwFunction,
	"begin":    KwBegin,
	"end":      KwEnd,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
