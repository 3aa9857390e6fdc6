// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	reportErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#DC143C"))
	reportFileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// Reporter renders accumulated diagnostics for the terminal. Located
// diagnostics show the stored source line with a caret aligned under
// the offending column; CommandNotFound prints the message only, and
// ExecutionFailure prints the message plus the file line.
type Reporter struct {
	filePath string
	out      io.Writer

	// multiple tracks whether a located diagnostic was already printed
	// during this run, so follow-ups collapse to an ellipsis header.
	multiple bool
}

// NewReporter creates a reporter for diagnostics rooted in the given
// configuration file.
func NewReporter(filePath string, out io.Writer) *Reporter {
	return &Reporter{filePath: filePath, out: out}
}

// PrintAll renders every diagnostic in push order.
func (r *Reporter) PrintAll(diagnostics []Diagnostic) {
	r.multiple = false
	for _, d := range diagnostics {
		r.Print(d)
	}
}

// Print renders one diagnostic.
func (r *Reporter) Print(d Diagnostic) {
	switch d.Kind {
	case CommandNotFound:
		fmt.Fprintln(r.out, reportErrorStyle.Render("Error: "+d.Message))
	case ExecutionFailure:
		fmt.Fprintln(r.out, reportErrorStyle.Render("Error: "+d.Message))
		fmt.Fprintln(r.out, reportFileStyle.Render("  → "+r.filePath))
	default:
		r.printLocated(d)
	}
	r.multiple = true
}

func (r *Reporter) printLocated(d Diagnostic) {
	if r.multiple {
		fmt.Fprintln(r.out, reportErrorStyle.Render(" ..."))
	} else {
		fmt.Fprintln(r.out, reportErrorStyle.Render("Error: "+d.Kind.Title()))
		fmt.Fprintln(r.out, reportFileStyle.Render("  → "+r.filePath))
	}

	gutter := fmt.Sprintf("%d", d.Location.Line)
	fmt.Fprintln(r.out, reportErrorStyle.Render(
		fmt.Sprintf("%s | %s", gutter, d.Location.LineText)))
	fmt.Fprintln(r.out, reportErrorStyle.Render(
		fmt.Sprintf("%s | %s%s",
			strings.Repeat(" ", len(gutter)),
			caretPadding(d.Location.Column),
			"└─ "+d.Message)))
}

// caretPadding returns the spaces placed before the caret so that it
// lands under the offending column. The caret glyph itself is three
// cells wide.
func caretPadding(column uint32) string {
	const caretWidth = 3
	if column <= caretWidth {
		return ""
	}
	return strings.Repeat(" ", int(column)-caretWidth)
}
