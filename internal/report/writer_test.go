package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/cyberkeygen/internal/model"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// createTestReport creates a history report with one entry per strength level.
func createTestReport() *model.EntryReport {
	return model.NewEntryReport("Password History", []model.HistoryEntry{
		model.NewHistoryEntry("Xk9#mP2$vL7@nQ4!", model.EntryTypeRandom, model.StrengthVeryStrong, testTime),
		model.NewHistoryEntry("H3ll0 W0rld", model.EntryTypeLeet, model.StrengthModerate, testTime),
		model.NewHistoryEntry("4821", model.EntryTypePIN, model.StrengthWeak, testTime),
	})
}

func createTestResults() []*model.Result {
	ok := model.NewResult(model.NewPINRequest(6, false))
	ok.Value = "902134"
	ok.Strength = model.StrengthWeak

	failed := model.NewResult(model.NewLeetRequest(""))
	failed.Err = errEmpty
	failed.ErrorMessage = errEmpty.Error()

	return []*model.Result{ok, failed}
}

type stringError string

func (e stringError) Error() string { return string(e) }

const errEmpty = stringError("no text to convert")

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{"PASSWORD HISTORY", "Xk9#mP2$vL7@nQ4!", "Pattern", "Very Strong", "PIN"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q:\n%s", want, output)
			}
		}
	})

	t.Run("masks values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithMask(true)).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "Xk9#mP2$vL7@nQ4!") {
			t.Error("expected value to be masked")
		}
		if !strings.Contains(output, "Xk**************") {
			t.Errorf("expected masked value in output:\n%s", output)
		}
	})

	t.Run("empty report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(model.NewEntryReport("Favorites", nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No entries.") {
			t.Errorf("expected empty message:\n%s", buf.String())
		}
	})

	t.Run("verbose adds strength summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Total: 3", "Pattern:", "PIN:"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("expected %q in output:\n%s", want, buf.String())
			}
		}
	})
}

func TestSimpleWriterWriteResults(t *testing.T) {
	t.Parallel()

	t.Run("bare values by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteResults(createTestResults()[:1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "902134\n" {
			t.Errorf("output = %q, want %q", buf.String(), "902134\n")
		}
	})

	t.Run("strength label when requested", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithShowStrength(true)).WriteResults(createTestResults()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "902134  (Weak)") {
			t.Errorf("expected strength label:\n%s", output)
		}
		if !strings.Contains(output, "error: no text to convert") {
			t.Errorf("expected error line:\n%s", output)
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("outputs valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed model.EntryReport
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(parsed.Entries) != 3 || parsed.Entries[0].Strength != "very-strong" {
			t.Errorf("unexpected entries: %+v", parsed.Entries)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) > 1 {
			t.Errorf("expected compact output (1 line), got %d lines", len(lines))
		}
	})

	t.Run("pretty print with indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) < 5 {
			t.Errorf("expected multi-line output, got %d lines", len(lines))
		}
	})

	t.Run("custom indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithIndent("", "\t")).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n\t\"title\"") {
			t.Errorf("expected tab indentation:\n%s", buf.String())
		}
	})

	t.Run("results are always an array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteResults(createTestResults()[:1]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var parsed []map[string]any
		if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
			t.Fatalf("output is not a JSON array: %v", err)
		}
		if parsed[0]["value"] != "902134" || parsed[0]["strength"] != "weak" {
			t.Errorf("unexpected result: %v", parsed[0])
		}
	})

	t.Run("nil results are an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteResults(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "[]\n" {
			t.Errorf("output = %q, want []", buf.String())
		}
	})
}

func TestFullJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewFullJSONWriter(&buf, "1.2.3", WithPrettyPrint()).Write(createTestReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed JSONReport
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed.Version != "1.2.3" {
		t.Errorf("expected version %q, got %q", "1.2.3", parsed.Version)
	}
	if parsed.StrengthCounts["weak"] != 1 || parsed.StrengthCounts["very-strong"] != 1 {
		t.Errorf("unexpected counts: %v", parsed.StrengthCounts)
	}
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		multi := NewMultiWriter(NewSimpleWriter(&buf1), NewJSONWriter(&buf2))

		n, err := multi.Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf1.Len()+buf2.Len() {
			t.Errorf("expected %d bytes, got %d", buf1.Len()+buf2.Len(), n)
		}
		if strings.HasPrefix(buf1.String(), "{") {
			t.Error("expected buf1 (simple) to not be JSON")
		}
		if !strings.HasPrefix(buf2.String(), "{") {
			t.Error("expected buf2 (JSON) to contain JSON")
		}
	})

	t.Run("writes results to all writers", func(t *testing.T) {
		t.Parallel()

		var buf1, buf2 bytes.Buffer
		multi := NewMultiWriter(NewSimpleWriter(&buf1), NewMarkdownWriter(&buf2))

		if _, err := multi.WriteResults(createTestResults()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf1.String(), "902134") || !strings.Contains(buf2.String(), "`902134`") {
			t.Errorf("unexpected output:\n%s\n%s", buf1.String(), buf2.String())
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header, summary and chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Password History",
			"## Strength Summary",
			"🔴 Weak",
			"```mermaid",
			"Strength Distribution",
			"[!WARNING]",
			"## Entries",
			"`Xk9#mP2$vL7@nQ4!`",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q:\n%s", want, output)
			}
		}
	})

	t.Run("strong list gets a tip", func(t *testing.T) {
		t.Parallel()

		report := model.NewEntryReport("Favorites", []model.HistoryEntry{
			model.NewHistoryEntry("Xk9#mP2$vL7@nQ4!", model.EntryTypeRandom, model.StrengthVeryStrong, testTime),
		})

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!TIP]") {
			t.Errorf("expected tip alert:\n%s", buf.String())
		}
	})

	t.Run("empty list has no chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(model.NewEntryReport("Favorites", nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "```mermaid") {
			t.Error("expected no chart for empty list")
		}
		if !strings.Contains(buf.String(), "[!NOTE]") {
			t.Errorf("expected note alert:\n%s", buf.String())
		}
	})

	t.Run("masked values", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, WithMarkdownMask(true)).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "Xk9#mP2$vL7@nQ4!") {
			t.Error("expected value to be masked")
		}
	})

	t.Run("results table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteResults(createTestResults()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# Generated Values") || !strings.Contains(output, "no text to convert") {
			t.Errorf("unexpected output:\n%s", output)
		}
	})
}

func TestCodeSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"abc", "`abc`"},
		{"a|b", "`a\\|b`"},
		{"a`b", "`` a`b ``"},
	}
	for _, tt := range tests {
		if got := codeSpan(tt.in); got != tt.want {
			t.Errorf("codeSpan(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"ab", 1, "a"},
		{"héllo wörld", 8, "héllo..."},
	}
	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestMaskedValue(t *testing.T) {
	t.Parallel()

	if got := maskedValue("ab"); got != "**" {
		t.Errorf("maskedValue(ab) = %q", got)
	}
	if got := maskedValue("abcd"); got != "ab**" {
		t.Errorf("maskedValue(abcd) = %q", got)
	}
}
