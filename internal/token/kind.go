package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents an integer or float literal.
	Number
	// String represents a string literal.
	String

	// KwInt represents the 'int' type keyword.
	KwInt // int
	// KwFloat represents the 'float' type keyword.
	KwFloat // float
	// KwString represents the 'string' type keyword.
	KwString // string
	// KwBool represents the 'bool' type keyword.
	KwBool // bool
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwBegin represents the 'begin' keyword.
	KwBegin // begin
	// KwEnd represents the 'end' keyword.
	KwEnd // end

	// Plus represents the '+' operator.
	Plus // +
	// Minus represents the '-' operator.
	Minus // -
	// Star represents the '*' operator.
	Star // *
	// Slash represents the '/' operator.
	Slash // /
	// Percent represents the '%' operator.
	Percent // %
	// Assign represents the '=' operator.
	Assign // =
	// PlusAssign represents the '+=' operator.
	PlusAssign // +=
	// MinusAssign represents the '-=' operator.
	MinusAssign // -=
	// StarAssign represents the '*=' operator.
	StarAssign // *=
	// SlashAssign represents the '/=' operator.
	SlashAssign // /=
	// EqEq represents the '==' operator.
	EqEq // ==
	// BangEq represents the '!=' operator.
	BangEq // !=
	// Lt represents the '<' operator.
	Lt // <
	// LtEq represents the '<=' operator.
	LtEq // <=
	// Gt represents the '>' operator.
	Gt // >
	// GtEq represents the '>=' operator.
	GtEq // >=
	// AndAnd represents the '&&' operator.
	AndAnd // &&
	// OrOr represents the '||' operator.
	OrOr // ||
	// Bang represents the '!' operator.
	Bang // !

	// LBrace represents the '{' delimiter.
	LBrace // {
	// RBrace represents the '}' delimiter.
	RBrace // }
	// LParen represents the '(' delimiter.
	LParen // (
	// RParen represents the ')' delimiter.
	RParen // )
	// LBracket represents the '[' delimiter.
	LBracket // [
	// RBracket represents the ']' delimiter.
	RBracket // ]
	// Semicolon represents the ';' delimiter.
	Semicolon // ;
	// Comma represents the ',' delimiter.
	Comma // ,
	// Colon represents the ':' delimiter.
	Colon // :
	// Dot represents the '.' delimiter.
	Dot // .

	kindCount
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	Number:      "Number",
	String:      "String",
	KwInt:       "KwInt",
	KwFloat:     "KwFloat",
	KwString:    "KwString",
	KwBool:      "KwBool",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwElif:      "KwElif",
	KwWhile:     "KwWhile",
	KwFor:       "KwFor",
	KwReturn:    "KwReturn",
	KwBreak:     "KwBreak",
	KwContinue:  "KwContinue",
	KwTrue:      "KwTrue",
	KwFalse:     "KwFalse",
	KwNull:      "KwNull",
	KwConst:     "KwConst",
	KwFunction:  "KwFunction",
	KwBegin:     "KwBegin",
	KwEnd:       "KwEnd",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	Slash:       "Slash",
	Percent:     "Percent",
	Assign:      "Assign",
	PlusAssign:  "PlusAssign",
	MinusAssign: "MinusAssign",
	StarAssign:  "StarAssign",
	SlashAssign: "SlashAssign",
	EqEq:        "EqEq",
	BangEq:      "BangEq",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	AndAnd:      "AndAnd",
	OrOr:        "OrOr",
	Bang:        "Bang",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LParen:      "LParen",
	RParen:      "RParen",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	Colon:       "Colon",
	Dot:         "Dot",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Invalid"
}
