package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nao1215/cyberkeygen/internal/config"
	"github.com/nao1215/cyberkeygen/internal/database"
	"github.com/nao1215/cyberkeygen/internal/history"
	seclog "github.com/nao1215/cyberkeygen/internal/log"
	"github.com/nao1215/cyberkeygen/internal/model"
	"github.com/nao1215/cyberkeygen/internal/preferences"
	"github.com/nao1215/cyberkeygen/internal/report"
)

// displayTimeLayout formats timestamps in command messages.
const displayTimeLayout = "2006-01-02 15:04:05"

// app holds the services shared by the commands that touch stored state.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	db      *database.KVDB
	history *history.Service
	prefs   *preferences.Service
}

// openApp builds the configuration, opens the database and seeds it from
// the configuration file on first run. Callers must Close the app.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := seclog.NewSecureLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if logJSON, _ := getPersistentString(cmd, "log-json"); logJSON == "true" {
		logger = seclog.NewSecureJSONLogger(cmd.ErrOrStderr(), cfg.Verbose)
	}

	db, err := database.Open(cfg.DataDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", db.Path())

	a := &app{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		history: history.New(db, history.WithLogger(logger)),
		prefs:   preferences.New(db, preferences.WithLogger(logger)),
	}

	if err := a.seed(cmd.Context()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

// seed copies the settings and theme of the configuration file into the
// database when nothing is stored yet.
func (a *app) seed(ctx context.Context) error {
	f := a.cfg.File
	if f == nil {
		return nil
	}
	if f.Settings != nil {
		if _, err := a.prefs.Seed(ctx, *f.Settings); err != nil {
			return err
		}
	}
	if f.Theme != "" {
		theme, err := model.ParseTheme(f.Theme)
		if err != nil {
			return err
		}
		if _, err := a.prefs.SeedTheme(ctx, theme); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database.
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getPersistentString retrieves a global string flag.
// It returns "" and false when the flag is not defined or not set.
func getPersistentString(cmd *cobra.Command, name string) (string, bool) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return "", false
	}
	return flag.Value.String(), flag.Changed
}

// buildConfig creates a Config from cobra command flags and the
// configuration file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	dataDir, dataDirFromFlag := getPersistentString(cmd, "data-dir")
	if dataDirFromFlag {
		if dataDir == "" {
			return nil, config.ErrEmptyDataDir
		}
		cfg.DataDir = dataDir
	}

	cfg.ConfigFilePath, _ = getPersistentString(cmd, "config")

	// If the user named a config file it must exist; otherwise a missing
	// file just means built-in defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		f, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(f, dataDirFromFlag)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if err := readOutputFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := readGenerateFlags(cmd, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// addOutputFlags adds the report format flags to cmd.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output in JSON format")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output in Markdown format")
	cmd.Flags().StringP("output", "o", "",
		"Write output to file instead of stdout")
}

// readOutputFlags copies the report format flags that cmd defines into cfg.
func readOutputFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var err error
	if flags.Lookup("json") != nil {
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return err
		}
	}
	if flags.Lookup("markdown") != nil {
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return err
		}
	}
	if flags.Lookup("output") != nil {
		if cfg.ReportFile, err = flags.GetString("output"); err != nil {
			return err
		}
	}
	return nil
}

// signalContext returns a context cancelled on interrupt or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// openOutput returns the destination selected by --output: a file created
// with owner-only permissions, or the command's stdout.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Output holds passwords, so only the owner may read it.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// newWriter selects the report writer for cfg.
// Lists get a versioned JSON wrapper; generated values get a bare array.
func newWriter(cfg *config.Config, output io.Writer, mask, list bool) report.Writer {
	switch {
	case cfg.JSONReport && list:
		return report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output, report.WithMarkdownMask(mask))
	default:
		return report.NewSimpleWriter(output,
			report.WithShowStrength(isTerminal(output)),
			report.WithMask(mask),
			report.WithVerbose(cfg.Verbose),
		)
	}
}
