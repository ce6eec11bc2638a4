package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"

	"github.com/nao1215/cyberkeygen/internal/generator"
	seclog "github.com/nao1215/cyberkeygen/internal/log"
	"github.com/nao1215/cyberkeygen/internal/model"
	"github.com/nao1215/cyberkeygen/internal/strength"
)

// ErrNoValue is returned by steps that need a generated value when the
// result has none.
var ErrNoValue = errors.New("no generated value")

// GenerateStep produces the value for the request.
type GenerateStep struct {
	source generator.Source
	now    func() time.Time
	logger *slog.Logger
}

// GenerateStepOption configures a GenerateStep.
type GenerateStepOption func(*GenerateStep)

// WithClock sets the function used to stamp GeneratedAt.
func WithClock(now func() time.Time) GenerateStepOption {
	return func(s *GenerateStep) {
		s.now = now
	}
}

// WithGenerateLogger sets a custom logger for the generate step.
func WithGenerateLogger(logger *slog.Logger) GenerateStepOption {
	return func(s *GenerateStep) {
		s.logger = logger
	}
}

// NewGenerateStep creates a generate step drawing from source.
// A nil source uses generator.DefaultSource().
func NewGenerateStep(source generator.Source, opts ...GenerateStepOption) *GenerateStep {
	if source == nil {
		source = generator.DefaultSource()
	}
	s := &GenerateStep{
		source: source,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *GenerateStep) Name() string {
	return "generate"
}

// Do generates the value. Invalid requests stop the pipeline.
func (s *GenerateStep) Do(_ context.Context, result *model.Result) error {
	value, err := generator.Generate(s.source, result.Request)
	if err != nil {
		return err
	}
	result.Value = value
	result.GeneratedAt = s.now()

	s.logger.Debug("generated value",
		"type", string(result.Request.Type),
		"fingerprint", seclog.Fingerprint(value),
	)
	return nil
}

// ScoreStep scores the generated value.
type ScoreStep struct{}

// NewScoreStep creates a score step.
func NewScoreStep() *ScoreStep {
	return &ScoreStep{}
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do sets result.Strength.
func (s *ScoreStep) Do(_ context.Context, result *model.Result) error {
	if result.Value == "" {
		return ErrNoValue
	}
	result.Strength = strength.Level(result.Value)
	return nil
}

// Recorder stores generated values. history.Service implements it.
type Recorder interface {
	Record(ctx context.Context, value string, entryType model.EntryType) (model.HistoryEntry, error)
}

// RecordStep writes the value to the history.
// A failing history does not fail the pipeline.
type RecordStep struct {
	recorder Recorder
	logger   *slog.Logger
}

// NewRecordStep creates a record step.
func NewRecordStep(recorder Recorder, logger *slog.Logger) *RecordStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordStep{recorder: recorder, logger: logger}
}

// Name returns the step name.
func (s *RecordStep) Name() string {
	return "record"
}

// Do records the value and attaches the history entry to the result.
func (s *RecordStep) Do(ctx context.Context, result *model.Result) error {
	if result.Value == "" {
		return ErrNoValue
	}

	entry, err := s.recorder.Record(ctx, result.Value, result.Request.Type)
	if err != nil {
		s.logger.Warn("failed to save history", "error", err)
		result.AddError(fmt.Sprintf("history not saved: %v", err))
		return nil
	}
	result.Entry = &entry
	return nil
}

// CopyFunc places text on the clipboard.
type CopyFunc func(text string) error

// CopyStep places the value on the system clipboard.
// A missing clipboard does not fail the pipeline.
type CopyStep struct {
	copy   CopyFunc
	logger *slog.Logger
}

// NewCopyStep creates a copy step. A nil copyFn uses the system clipboard.
func NewCopyStep(copyFn CopyFunc, logger *slog.Logger) *CopyStep {
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CopyStep{copy: copyFn, logger: logger}
}

// Name returns the step name.
func (s *CopyStep) Name() string {
	return "copy"
}

// Do copies the value and sets result.Copied.
func (s *CopyStep) Do(_ context.Context, result *model.Result) error {
	if result.Value == "" {
		return ErrNoValue
	}

	if err := s.copy(result.Value); err != nil {
		s.logger.Warn("failed to copy to clipboard", "error", err)
		result.AddError(fmt.Sprintf("not copied: %v", err))
		return nil
	}
	result.Copied = true
	return nil
}
