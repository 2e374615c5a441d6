// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output prints conversion status lines and maps errors to exit codes.
// Progress goes to the main writer; warnings and failures go to the error
// writer. Styling is applied only when color is enabled.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes status lines for a conversion run.
type Printer struct {
	w       io.Writer
	errW    io.Writer
	verbose bool
	styles  styles
}

type styles struct {
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	bold    lipgloss.Style
	dim     lipgloss.Style
}

// NewPrinter creates a Printer writing to w. Errors and warnings also go to w
// until WithStderr is called.
func NewPrinter(w io.Writer, color bool) *Printer {
	s := styles{
		success: lipgloss.NewStyle(),
		warning: lipgloss.NewStyle(),
		failure: lipgloss.NewStyle(),
		bold:    lipgloss.NewStyle(),
		dim:     lipgloss.NewStyle(),
	}
	if color {
		s.success = s.success.Foreground(lipgloss.Color("10"))
		s.warning = s.warning.Foreground(lipgloss.Color("11"))
		s.failure = s.failure.Foreground(lipgloss.Color("9")).Bold(true)
		s.bold = s.bold.Bold(true)
		s.dim = s.dim.Foreground(lipgloss.Color("8"))
	}
	return &Printer{w: w, errW: w, styles: s}
}

// WithStderr sets a separate writer for warnings and failures.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// WithVerbose enables one line per written file.
func (p *Printer) WithVerbose(v bool) *Printer {
	p.verbose = v
	return p
}

// Converted reports a finished source file.
func (p *Printer) Converted(source, dir string, written, skipped int) {
	line := fmt.Sprintf("%s -> %s (%d %s", source, dir, written, plural(written, "file", "files"))
	if skipped > 0 {
		line += fmt.Sprintf(", %d skipped", skipped)
	}
	line += ")"
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.success.Render("converted:"), line))
}

// Wrote reports a single output file. Silent unless verbose.
func (p *Printer) Wrote(path string) {
	if !p.verbose {
		return
	}
	mustWrite(fmt.Fprintf(p.w, "  %s %s\n", p.styles.dim.Render("wrote"), path))
}

// Info writes a plain progress line.
func (p *Printer) Info(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format+"\n", args...))
}

// Skipped reports a record that was not converted.
func (p *Printer) Skipped(err error) {
	mustWrite(fmt.Fprintf(p.errW, "%s %v\n", p.styles.warning.Render("skipped:"), err))
}

// Warn reports a non-fatal problem.
func (p *Printer) Warn(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.errW, "%s %s\n", p.styles.warning.Render("warning:"), fmt.Sprintf(format, args...)))
}

// Failed reports a source file that could not be converted.
func (p *Printer) Failed(err error) {
	mustWrite(fmt.Fprintf(p.errW, "%s  %v\n", p.styles.failure.Render("failed:"), err))
}

// Summary prints the totals of a directory scan.
func (p *Printer) Summary(converted, failed, records, skipped int) {
	mustWrite(fmt.Fprintf(p.w, "\n%s %d converted, %d failed, %d %s written, %d skipped\n",
		p.styles.bold.Render("Summary:"), converted, failed, records, plural(records, "record", "records"), skipped))
}

// WriteJSON encodes data as indented JSON on the main writer.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Table renders rows under bold headers with space-padded columns.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range headers {
		if i > 0 {
			mustWrite(fmt.Fprint(p.w, "  "))
		}
		mustWrite(fmt.Fprint(p.w, p.styles.bold.Render(padRight(h, widths[i]))))
	}
	mustWrite(fmt.Fprintln(p.w))

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				mustWrite(fmt.Fprint(p.w, "  "))
			}
			mustWrite(fmt.Fprint(p.w, padRight(cell, widths[i])))
		}
		mustWrite(fmt.Fprintln(p.w))
	}
}

// mustWrite panics if a write to stdout, stderr, or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
