package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the list in JSON format.
func (w *JSONWriter) Write(report *model.EntryReport) (int, error) {
	return w.writeJSON(report)
}

// WriteResults outputs the generated values as a JSON array, even when there
// is only one, so that scripts can rely on the shape.
func (w *JSONWriter) WriteResults(results []*model.Result) (int, error) {
	if results == nil {
		results = []*model.Result{}
	}
	return w.writeJSON(results)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONReport wraps an exported list with the version that wrote it.
type JSONReport struct {
	// Version is the CyberKeyGen version that generated this report.
	Version string `json:"version"`

	// Report is the exported list.
	Report *model.EntryReport `json:"report"`

	// StrengthCounts is the number of entries per strength label.
	StrengthCounts map[string]int `json:"strength_counts"`
}

// NewJSONReport creates a JSONReport wrapper with version information.
func NewJSONReport(report *model.EntryReport, version string) *JSONReport {
	counts := make(map[string]int)
	for level, n := range report.StrengthCounts() {
		counts[level.Slug()] = n
	}
	return &JSONReport{
		Version:        version,
		Report:         report,
		StrengthCounts: counts,
	}
}

// FullJSONWriter outputs exported lists with a metadata wrapper.
type FullJSONWriter struct {
	*JSONWriter

	// version is the CyberKeyGen version string.
	version string
}

// NewFullJSONWriter creates a writer for exported lists with metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// Write outputs the list wrapped with metadata.
func (w *FullJSONWriter) Write(report *model.EntryReport) (int, error) {
	return w.writeJSON(NewJSONReport(report, w.version))
}
