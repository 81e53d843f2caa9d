package symfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"minic/internal/diag"
	"minic/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen)
)

// DiagOpts control diagnostic rendering.
type DiagOpts struct {
	Color       bool
	ShowContext bool // print the offending source line with a caret
}

// WriteDiagnostics renders each diagnostic as
//
//	path:line:col: SEVERITY CODE: message
//
// optionally followed by the source line and a caret marking the span.
// The bag is sorted first so output is deterministic.
func WriteDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts DiagOpts) {
	bag.Sort()

	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			file.Path, start.Line, start.Col,
			severityLabel(d.Severity, opts.Color), d.Code, d.Message)

		if opts.ShowContext {
			writeContext(w, file, d.Primary, start, opts.Color)
		}

		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n",
				file.Path, noteStart.Line, noteStart.Col, note.Msg)
		}
	}
}

func severityLabel(sev diag.Severity, colorize bool) string {
	label := sev.String()
	if !colorize {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// writeContext prints the source line holding the span start and underlines
// the span with ^~~~.
func writeContext(w io.Writer, file *source.File, span source.Span, start source.LineCol, colorize bool) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	pad := strings.Repeat(" ", int(start.Col-1))
	width := int(span.Len())
	if width < 1 {
		width = 1
	}
	if max := len(line) - int(start.Col-1); width > max && max > 0 {
		width = max
	}
	caret := "^" + strings.Repeat("~", width-1)
	if colorize {
		caret = caretColor.Sprint(caret)
	}
	fmt.Fprintf(w, "    %s%s\n", pad, caret)
}
