package lexer

import (
	"minic/internal/token"
)

// twoByteOps maps greedy two-character operators.
var twoByteOps = map[string]token.Kind{
	"==": token.EqEq,
	"!=": token.BangEq,
	"<=": token.LtEq,
	">=": token.GtEq,
	"&&": token.AndAnd,
	"||": token.OrOr,
	"+=": token.PlusAssign,
	"-=": token.MinusAssign,
	"*=": token.StarAssign,
	"/=": token.SlashAssign,
}

var oneByteOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'=': token.Assign,
	'<': token.Lt,
	'>': token.Gt,
	'!': token.Bang,
	'{': token.LBrace,
	'}': token.RBrace,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	';': token.Semicolon,
	',': token.Comma,
	':': token.Colon,
	'.': token.Dot,
}

// scanOperatorOrDelim scans operators and delimiters, preferring the longest
// match. An unrecognized byte is reported and skipped; lexing continues with
// the next token.
func (lx *Lexer) scanOperatorOrDelim() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok {
		if kind, found := twoByteOps[string([]byte{b0, b1})]; found {
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	ch := lx.cursor.Bump()
	if kind, found := oneByteOps[ch]; found {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report("UnknownChar", sp, "unknown character "+quoteByte(ch))
	return lx.Next()
}

func quoteByte(b byte) string {
	return "'" + string(rune(b)) + "'"
}
