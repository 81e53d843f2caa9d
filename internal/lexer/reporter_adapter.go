package lexer

import (
	"minic/internal/diag"
	"minic/internal/source"
)

// DiagReporter adapts the lexer's Reporter contract onto a diag.Reporter,
// translating string kinds into diagnostic codes.
type DiagReporter struct {
	Target diag.Reporter
}

func (r DiagReporter) Report(kind string, span source.Span, msg string) {
	if r.Target == nil {
		return
	}
	code := diag.UnknownCode
	switch kind {
	case "UnknownChar":
		code = diag.LexUnknownChar
	case "UnterminatedString":
		code = diag.LexUnterminatedString
	case "BadNumber":
		code = diag.LexBadNumber
	}
	r.Target.Report(code, diag.SevError, span, msg, nil)
}
