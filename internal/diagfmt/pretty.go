// Package diagfmt renders diagnostics and token streams for humans and
// tools. It formats; it never decides what is an error.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ripple/internal/diag"
	"ripple/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
)

// Pretty renders each diagnostic as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  <caret underline>
//
// The caret line is aligned with go-runewidth so wide runes before the
// span do not shift the underline.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, file, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				start, _ := file.Resolve(n.Span)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", file.Path, start.Line, start.Col, n.Msg)
			}
		}
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, file *source.File, opts PrettyOpts) {
	start, end := file.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	line := file.Line(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Pad with the display width of everything before the span, then
	// underline the span itself (at least one caret). Columns are byte
	// offsets into the line, so slice by bytes and measure display
	// width afterwards.
	prefix := byteSlice(line, 0, start.Col-1)
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))

	underlineLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		spanText := byteSlice(line, start.Col-1, end.Col-1)
		if wd := runewidth.StringWidth(spanText); wd > 0 {
			underlineLen = wd
		}
	}
	underline := "^" + strings.Repeat("~", underlineLen-1)
	if opts.Color {
		underline = severityColor(d.Severity).Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, underline)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

// byteSlice slices line by byte offsets, clamping both ends.
func byteSlice(line string, from, to uint32) string {
	f, t := int(from), int(to)
	if f > len(line) {
		f = len(line)
	}
	if t > len(line) {
		t = len(line)
	}
	if t < f {
		t = f
	}
	return line[f:t]
}
