package lexer

import (
	"strconv"

	"minic/internal/token"
)

// scanNumber scans a decimal integer or float literal. At most one decimal
// point is consumed; a second dot ends the literal ("1.2.3" lexes as Number
// "1.2" followed by Dot and Number "3").
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	hasDecimal := false

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '.' {
			if hasDecimal {
				break
			}
			// Only consume the dot when a digit follows, so a trailing
			// "1." keeps the dot as its own token.
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '.' || !isDec(b1) {
				break
			}
			hasDecimal = true
			lx.cursor.Bump()
			continue
		}
		if !isDec(ch) {
			break
		}
		lx.cursor.Bump()
	}

	// Identifier characters glued to the digits ("12abc") are part of the
	// same malformed literal, not a separate token.
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.file.Content[sp.Start:sp.End])
		lx.report("BadNumber", sp, "malformed number literal "+strconv.Quote(text))
		return token.Token{Kind: token.Number, Span: sp, Text: text}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
