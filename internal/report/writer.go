package report

import (
	"io"
	"strings"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs a history or favorites list.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.EntryReport) (int, error)

	// WriteResults outputs freshly generated values.
	WriteResults(results []*model.Result) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.EntryReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteResults outputs the results to all configured Writers.
func (m *MultiWriter) WriteResults(results []*model.Result) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteResults(results)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// entryTypes is the order in which per-type counts are listed.
var entryTypes = []model.EntryType{model.EntryTypeRandom, model.EntryTypeLeet, model.EntryTypePIN}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// maskedValue hides all but the first two characters of value.
func maskedValue(value string) string {
	runes := []rune(value)
	if len(runes) <= 2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-2)
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
