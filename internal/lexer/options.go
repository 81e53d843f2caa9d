package lexer

import (
	"minic/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag.
// The lexer only calls it; formatting belongs to outer layers.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Options configure a lexer instance.
type Options struct {
	Reporter Reporter // nil means lexical errors are dropped (lexing continues)
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
