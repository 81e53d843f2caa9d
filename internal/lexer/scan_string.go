package lexer

import (
	"minic/internal/token"
)

// scanString scans a string literal delimited by ' or ". Token.Text holds
// the decoded value without quotes. Escapes: \n \t \r \\ and the active
// quote character; any other escape keeps the escaped byte verbatim.
// An unterminated string is reported and the partial value is returned.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	var value []byte
	terminated := false

	for !lx.cursor.EOF() {
		ch := lx.cursor.Bump()
		if ch == quote {
			terminated = true
			break
		}
		if ch == '\\' && !lx.cursor.EOF() {
			esc := lx.cursor.Bump()
			switch esc {
			case 'n':
				value = append(value, '\n')
			case 't':
				value = append(value, '\t')
			case 'r':
				value = append(value, '\r')
			case '\\':
				value = append(value, '\\')
			case quote:
				value = append(value, quote)
			default:
				value = append(value, esc)
			}
			continue
		}
		value = append(value, ch)
	}

	sp := lx.cursor.SpanFrom(start)
	if !terminated {
		lx.report("UnterminatedString", sp, "unterminated string literal")
	}
	return token.Token{
		Kind: token.String,
		Span: sp,
		Text: string(value),
	}
}
