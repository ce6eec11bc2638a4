package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/cyberkeygen/internal/config"
	"github.com/nao1215/cyberkeygen/internal/generator"
	"github.com/nao1215/cyberkeygen/internal/model"
	"github.com/nao1215/cyberkeygen/internal/pipeline"
)

// requestBuilder turns flags and stored settings into a generation request.
type requestBuilder func(cmd *cobra.Command, args []string, settings model.Settings) (model.Request, error)

// NewPasswordCmd creates the password command.
func NewPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "password",
		Aliases: []string{"pw"},
		Short:   "Generate a random or pronounceable password",
		Long: `Generate a password from the selected character sets.

Options not given on the command line come from the stored settings
(see "cyberkeygen settings").

Examples:
  # Password with the stored defaults
  cyberkeygen password

  # 32 characters without symbols
  cyberkeygen password -l 32 --symbols=false

  # Five pronounceable passwords as JSON
  cyberkeygen password --pronounceable -n 5 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, passwordRequest)
		},
	}

	defaults := model.DefaultSettings()
	cmd.Flags().IntP("length", "l", defaults.DefaultLength, "Password length (1-1024)")
	cmd.Flags().Bool("lowercase", defaults.DefaultIncludeLowercase, "Include lowercase letters")
	cmd.Flags().Bool("uppercase", defaults.DefaultIncludeUppercase, "Include uppercase letters")
	cmd.Flags().Bool("numbers", defaults.DefaultIncludeNumbers, "Include digits")
	cmd.Flags().Bool("symbols", defaults.DefaultIncludeSymbols, "Include symbols")
	cmd.Flags().Bool("exclude-ambiguous", defaults.DefaultExcludeAmbiguous,
		"Exclude look-alike characters and hard-to-type punctuation")
	cmd.Flags().Bool("avoid-repeating", defaults.DefaultAvoidRepeating,
		"Avoid characters that already appear in the password")
	cmd.Flags().Bool("pronounceable", defaults.DefaultPronounceable,
		"Generate consonant-vowel syllables")
	addGenerateFlags(cmd)

	return cmd
}

// NewPINCmd creates the pin command.
func NewPINCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Generate a numeric PIN",
		Long: `Generate a PIN made of digits only.

Examples:
  cyberkeygen pin
  cyberkeygen pin -l 8 --avoid-repeating`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, pinRequest)
		},
	}

	cmd.Flags().IntP("length", "l", model.DefaultPinLength, "PIN length (1-1024)")
	cmd.Flags().Bool("avoid-repeating", false, "Avoid digits that already appear in the PIN")
	addGenerateFlags(cmd)

	return cmd
}

// NewLeetCmd creates the leet command.
func NewLeetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leet <text>...",
		Short: "Turn a phrase into leet speak",
		Long: `Replace letters of a phrase with look-alike symbols and digits.

Each letter is replaced with a probability of 70%, so repeated runs give
different results. Multiple arguments are joined with a space.

Examples:
  cyberkeygen leet "correct horse battery staple"
  cyberkeygen leet hello world -n 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, leetRequest)
		},
	}
	addGenerateFlags(cmd)
	return cmd
}

// NewGenerateCmd creates the generate command, which runs the generator
// named by the stored default tab.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate [text]...",
		Aliases: []string{"gen"},
		Short:   "Generate a value with the default generator",
		Long: `Generate a value with the generator selected by the "defaultTab"
setting (random, leet or pin) and its stored defaults.

The leet generator needs the text to transform as arguments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, defaultTabRequest)
		},
	}
	addGenerateFlags(cmd)
	return cmd
}

// addGenerateFlags adds the flags shared by all generation commands.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("count", "n", config.DefaultCount,
		"Number of values to generate (1-1000)")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of values generated in parallel")
	cmd.Flags().Bool("copy", false,
		"Copy the (first) value to the clipboard")
	cmd.Flags().Bool("no-history", false,
		"Do not save generated values to the history")
	addOutputFlags(cmd)
}

// readGenerateFlags copies the shared generation flags into cfg when cmd has them.
func readGenerateFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Lookup("count") == nil {
		return nil
	}

	var err error
	if cfg.Count, err = cmd.Flags().GetInt("count"); err != nil {
		return err
	}
	if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
		return err
	}
	if cfg.Copy, err = cmd.Flags().GetBool("copy"); err != nil {
		return err
	}
	cfg.NoHistory, err = cmd.Flags().GetBool("no-history")
	return err
}

// intFlagOr returns the int flag when given, fallback otherwise.
func intFlagOr(cmd *cobra.Command, name string, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	return cmd.Flags().GetInt(name)
}

// boolFlagOr returns the bool flag when given, fallback otherwise.
func boolFlagOr(cmd *cobra.Command, name string, fallback bool) (bool, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	return cmd.Flags().GetBool(name)
}

func passwordRequest(cmd *cobra.Command, _ []string, settings model.Settings) (model.Request, error) {
	opts := settings.PasswordOptions()

	var err error
	if opts.Length, err = intFlagOr(cmd, "length", opts.Length); err != nil {
		return model.Request{}, err
	}

	bools := []struct {
		name  string
		value *bool
	}{
		{"lowercase", &opts.IncludeLowercase},
		{"uppercase", &opts.IncludeUppercase},
		{"numbers", &opts.IncludeNumbers},
		{"symbols", &opts.IncludeSymbols},
		{"exclude-ambiguous", &opts.ExcludeAmbiguous},
		{"avoid-repeating", &opts.AvoidRepeating},
		{"pronounceable", &opts.UsePronounceable},
	}
	for _, b := range bools {
		if *b.value, err = boolFlagOr(cmd, b.name, *b.value); err != nil {
			return model.Request{}, err
		}
	}

	return model.NewPasswordRequest(opts), nil
}

func pinRequest(cmd *cobra.Command, _ []string, settings model.Settings) (model.Request, error) {
	length, err := intFlagOr(cmd, "length", settings.DefaultPinLength)
	if err != nil {
		return model.Request{}, err
	}
	avoid, err := boolFlagOr(cmd, "avoid-repeating", false)
	if err != nil {
		return model.Request{}, err
	}
	return model.NewPINRequest(length, avoid), nil
}

func leetRequest(_ *cobra.Command, args []string, _ model.Settings) (model.Request, error) {
	return model.NewLeetRequest(strings.Join(args, " ")), nil
}

func defaultTabRequest(cmd *cobra.Command, args []string, settings model.Settings) (model.Request, error) {
	switch settings.DefaultTab {
	case model.TabLeet:
		if len(args) == 0 {
			return model.Request{}, errors.New("the default generator is leet: give the text to transform as arguments")
		}
		return leetRequest(cmd, args, settings)
	case model.TabPIN:
		return model.NewPINRequest(settings.DefaultPinLength, false), nil
	default:
		return model.NewPasswordRequest(settings.PasswordOptions()), nil
	}
}

// runGenerate generates cfg.Count values for the request built from flags
// and stored settings, and writes them in the selected format.
func runGenerate(cmd *cobra.Command, args []string, build requestBuilder) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signalContext(cmd)
	defer cancel()

	req, err := build(cmd, args, a.prefs.Settings(ctx))
	if err != nil {
		return err
	}

	results, err := a.generate(ctx, req)
	if err != nil {
		return err
	}

	if len(results) == 1 && results[0].Failed() {
		return fmt.Errorf("failed to generate %s: %w", req.Type.DisplayName(), results[0].Err)
	}

	if a.cfg.Copy {
		a.copyFirst(ctx, results)
	}

	output, closeOutput, err := openOutput(cmd, a.cfg)
	if err != nil {
		return err
	}
	if _, err := newWriter(a.cfg, output, false, false).WriteResults(results); err != nil {
		_ = closeOutput()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := closeOutput(); err != nil {
		return err
	}

	return batchError(results)
}

// newPipeline creates the pipeline for one value.
func (a *app) newPipeline() *pipeline.Pipeline {
	p := pipeline.New(pipeline.WithLogger(a.logger))
	p.AddSteps(
		pipeline.NewGenerateStep(generator.DefaultSource(), pipeline.WithGenerateLogger(a.logger)),
		pipeline.NewScoreStep(),
	)
	if !a.cfg.NoHistory {
		p.AddStep(pipeline.NewRecordStep(a.history, a.logger))
	}
	a.logger.Debug("pipeline ready", "steps", p.StepNames())
	return p
}

// generate runs req cfg.Count times. A single value runs inline; more go
// through the batch processor.
func (a *app) generate(ctx context.Context, req model.Request) ([]*model.Result, error) {
	if a.cfg.Count == 1 {
		result := model.NewResult(req)
		_ = a.newPipeline().Execute(ctx, result) //nolint:errcheck // Error is stored in result
		return []*model.Result{result}, nil
	}

	requests := make([]model.Request, a.cfg.Count)
	for i := range requests {
		requests[i] = req
	}

	bp := pipeline.NewBatchProcessor(a.newPipeline,
		pipeline.WithConcurrency(a.cfg.Concurrency),
		pipeline.WithBatchLogger(a.logger),
	)
	return bp.ProcessBatch(ctx, requests)
}

// copyFirst places the first successful value on the clipboard.
func (a *app) copyFirst(ctx context.Context, results []*model.Result) {
	for _, r := range results {
		if r != nil && !r.Failed() {
			_ = pipeline.NewCopyStep(nil, a.logger).Do(ctx, r) //nolint:errcheck // Failure is recorded on the result
			return
		}
	}
}

// batchError returns an error when some values of a batch failed.
func batchError(results []*model.Result) error {
	failed := 0
	for _, r := range results {
		if r == nil || r.Failed() {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d values failed", failed, len(results))
}
