package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// reportWidth is the layout width of all report lines: separators are this
// wide, and headers are padded to it before any trailing suffix.
const reportWidth = 80

// LineWriter is the ordered, append-only output sink the reporting code
// writes to. Line ordering must match report-generation order exactly, since
// the layout (banners, separators, summary) depends on strict sequencing.
type LineWriter interface {
	WriteLine(s string)
}

var (
	passedLine = color.New(color.FgGreen)
	failedLine = color.New(color.FgRed)
)

// ConsoleWriter writes report lines to an io.Writer, optionally colorizing
// pass/fail headers. Color is applied after layout, so padding is always
// computed on the plain text.
type ConsoleWriter struct {
	out      io.Writer
	useColor bool
}

func NewConsoleWriter(out io.Writer, useColor bool) *ConsoleWriter {
	return &ConsoleWriter{out: out, useColor: useColor}
}

func (w *ConsoleWriter) WriteLine(s string) {
	if w.useColor {
		switch {
		case strings.HasPrefix(s, passedMarker):
			passedLine.Fprintln(w.out, s)
			return
		case strings.HasPrefix(s, failedMarker):
			failedLine.Fprintln(w.out, s)
			return
		}
	}
	fmt.Fprintln(w.out, s)
}

// LineBuffer is a LineWriter that records lines in memory. It is used in
// tests, and anywhere report output needs to be inspected before display.
type LineBuffer struct {
	lines []string
}

func (b *LineBuffer) WriteLine(s string) {
	b.lines = append(b.lines, s)
}

// Lines returns a copy of everything written so far.
func (b *LineBuffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

func (b *LineBuffer) String() string {
	return strings.Join(b.lines, "\n")
}

// rule returns a separator line of the given character at full report width.
func rule(ch string) string {
	return strings.Repeat(ch, reportWidth)
}

// padToWidth right-pads s with spaces to the report width. Longer strings
// are returned as is, never truncated.
func padToWidth(s string) string {
	if len(s) < reportWidth {
		return s + strings.Repeat(" ", reportWidth-len(s))
	}
	return s
}
