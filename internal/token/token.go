package token

import (
	"minic/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwInt && t.Kind <= KwEnd
}

// IsTypeKeyword reports whether the token names one of the declarable types.
func (t Token) IsTypeKeyword() bool {
	switch t.Kind {
	case KwInt, KwFloat, KwString, KwBool:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a number, string, or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token is an operator.
func (t Token) IsOperator() bool {
	return t.Kind >= Plus && t.Kind <= Bang
}

// IsDelimiter reports whether the token is a delimiter.
func (t Token) IsDelimiter() bool {
	return t.Kind >= LBrace && t.Kind <= Dot
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Category returns the coarse token class used by external consumers:
// keyword, identifier, number, string, operator, delimiter, or eof.
func (t Token) Category() string {
	switch {
	case t.Kind == EOF:
		return "eof"
	case t.Kind == Ident:
		return "identifier"
	case t.Kind == Number:
		return "number"
	case t.Kind == String:
		return "string"
	case t.IsKeyword():
		return "keyword"
	case t.IsOperator():
		return "operator"
	case t.IsDelimiter():
		return "delimiter"
	default:
		return "invalid"
	}
}
