package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// Lists get a strength table, a mermaid pie chart and an alert that
// summarizes how many weak entries are kept.
type MarkdownWriter struct {
	baseWriter

	// mask hides stored passwords in list output.
	mask bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownMask hides stored passwords in list output.
func WithMarkdownMask(mask bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.mask = mask
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteResults outputs the generated values as a table.
func (w *MarkdownWriter) WriteResults(results []*model.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Generated Values")
	md.PlainText("")

	rows := make([][]string, len(results))
	for i, r := range results {
		value, strength := codeSpan(r.Value), r.Strength.String()
		if r.Failed() {
			value, strength = "❌ "+r.ErrorMessage, "-"
		}
		rows[i] = []string{strconv.Itoa(i + 1), r.Request.Type.DisplayName(), value, strength}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Type", "Value", "Strength"},
		Rows:   rows,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// Write outputs a history or favorites list.
func (w *MarkdownWriter) Write(report *model.EntryReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeEntries(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and basic information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.EntryReport) {
	md.H1(report.Title)
	md.PlainText("")

	rows := [][]string{
		{"Exported", report.GeneratedAt.Format(timeLayout)},
		{"Entries", strconv.Itoa(len(report.Entries))},
	}
	types := report.TypeCounts()
	for _, t := range entryTypes {
		if types[t] > 0 {
			rows = append(rows, []string{t.DisplayName(), strconv.Itoa(types[t])})
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes the strength table, the pie chart and an alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.EntryReport) {
	counts := report.StrengthCounts()

	md.H2("Strength Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(model.AllStrengths())+1)
	for _, s := range model.AllStrengths() {
		rows = append(rows, []string{strengthIcon(s) + " " + s.String(), strconv.Itoa(counts[s])})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(len(report.Entries)) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Strength", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if !report.IsEmpty() {
		w.writePieChart(md, counts)
	}
	w.writeAlert(md, report, counts)
}

// writePieChart writes a mermaid pie chart for strength distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, counts map[model.Strength]int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Strength Distribution"),
		piechart.WithShowData(true),
	)

	for _, s := range model.AllStrengths() {
		if counts[s] > 0 {
			chart.LabelAndIntValue(s.String(), uint64(counts[s]))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert based on the weakest entries kept.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.EntryReport, counts map[model.Strength]int) {
	switch {
	case report.IsEmpty():
		md.Note("No entries.")
	case counts[model.StrengthWeak] > 0:
		md.Warningf("%d weak value(s) kept. Consider regenerating them with more length or character types.", counts[model.StrengthWeak])
	case counts[model.StrengthModerate] > 0:
		md.Importantf("%d moderate value(s) kept.", counts[model.StrengthModerate])
	default:
		md.Tip("All entries are strong or very strong.")
	}
	md.PlainText("")
}

// writeEntries writes one row per entry.
func (w *MarkdownWriter) writeEntries(md *markdown.Markdown, report *model.EntryReport) {
	md.H2("Entries")
	md.PlainText("")

	if report.IsEmpty() {
		md.PlainText("No entries.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Entries))
	for i, e := range report.Entries {
		value := e.Password
		if w.mask {
			value = maskedValue(value)
		}
		rows[i] = []string{
			strconv.Itoa(i),
			e.Type.DisplayName(),
			codeSpan(truncateString(value, 64)),
			strengthIcon(e.StrengthLevel()) + " " + e.StrengthLevel().String(),
			e.Timestamp.Format(timeLayout),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Type", "Value", "Strength", "Created"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [CyberKeyGen](https://github.com/nao1215/cyberkeygen)*")
}

func strengthIcon(s model.Strength) string {
	switch s {
	case model.StrengthWeak:
		return "🔴"
	case model.StrengthModerate:
		return "🟡"
	case model.StrengthStrong:
		return "🟢"
	case model.StrengthVeryStrong:
		return "🔵"
	default:
		return "⚪"
	}
}

// codeSpan wraps s in a Markdown code span that survives backticks and
// table pipes inside s.
func codeSpan(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	if !strings.Contains(s, "`") {
		return "`" + s + "`"
	}
	return "`` " + s + " ``"
}
