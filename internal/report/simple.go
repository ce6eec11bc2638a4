package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// timeLayout is the timestamp format of text output.
const timeLayout = "2006-01-02 15:04:05 MST"

// SimpleWriter outputs human-readable text.
//
// Generated values are written one per line so that the output can be piped
// into other tools. Strength labels are only added with WithShowStrength.
type SimpleWriter struct {
	baseWriter

	// showStrength appends the strength label to generated values.
	showStrength bool

	// mask hides stored passwords in list output.
	mask bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowStrength appends the strength label to each generated value.
func WithShowStrength(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showStrength = show
	}
}

// WithMask hides stored passwords in history and favorites listings.
func WithMask(mask bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.mask = mask
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteResults writes one generated value per line.
func (w *SimpleWriter) WriteResults(results []*model.Result) (int, error) {
	var sb strings.Builder

	for _, r := range results {
		if r.Failed() {
			sb.WriteString(fmt.Sprintf("error: %s\n", r.ErrorMessage))
			continue
		}

		sb.WriteString(r.Value)
		if w.showStrength {
			sb.WriteString(fmt.Sprintf("  (%s)", r.Strength))
		}
		sb.WriteString("\n")

		if w.verbose {
			for _, msg := range r.Errors {
				sb.WriteString(fmt.Sprintf("  warning: %s\n", msg))
			}
			if r.Copied {
				sb.WriteString("  copied to clipboard\n")
			}
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// Write outputs a history or favorites list as a table.
func (w *SimpleWriter) Write(report *model.EntryReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeEntries(&sb, report)
	if w.verbose {
		w.writeSummary(&sb, report)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.EntryReport) {
	title := cases.Upper(language.English).String(report.Title)

	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%*s\n", 35+len(title)/2, title))
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
}

// writeEntries writes one row per entry, newest first.
func (w *SimpleWriter) writeEntries(sb *strings.Builder, report *model.EntryReport) {
	if report.IsEmpty() {
		sb.WriteString("No entries.\n")
		return
	}

	sb.WriteString(fmt.Sprintf("%-3s %-8s %-12s %-24s %s\n", "#", "TYPE", "STRENGTH", "CREATED", "VALUE"))
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	for i, e := range report.Entries {
		value := e.Password
		if w.mask {
			value = maskedValue(value)
		}
		sb.WriteString(fmt.Sprintf("%-3d %-8s %-12s %-24s %s\n",
			i,
			e.Type.DisplayName(),
			e.StrengthLevel(),
			e.Timestamp.Local().Format(timeLayout),
			value,
		))
	}
}

// writeSummary writes the count per strength level.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, report *model.EntryReport) {
	counts := report.StrengthCounts()

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total: %d\n", len(report.Entries)))
	for _, s := range model.AllStrengths() {
		if counts[s] > 0 {
			sb.WriteString(fmt.Sprintf("  %-12s %d\n", s.String()+":", counts[s]))
		}
	}

	types := report.TypeCounts()
	for _, t := range entryTypes {
		if types[t] > 0 {
			sb.WriteString(fmt.Sprintf("  %-12s %d\n", t.DisplayName()+":", types[t]))
		}
	}
}
