package preferences

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/nao1215/cyberkeygen/internal/model"
	"github.com/nao1215/cyberkeygen/internal/store"
)

// Service reads and writes settings and theme.
type Service struct {
	store  store.Store
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used to report storage failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a Service on top of st.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Settings returns the stored settings, or the defaults when none are
// stored or they cannot be read.
func (s *Service) Settings(ctx context.Context) model.Settings {
	settings, _, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("failed to load settings, using defaults", "error", err)
		return model.DefaultSettings()
	}
	return settings
}

// load decodes the stored settings onto the defaults.
// found is false when no settings record exists.
func (s *Service) load(ctx context.Context) (model.Settings, bool, error) {
	settings := model.DefaultSettings()
	err := s.store.Get(ctx, store.KeySettings, &settings)
	if errors.Is(err, store.ErrNotFound) {
		return model.DefaultSettings(), false, nil
	}
	if err != nil {
		return model.Settings{}, false, err
	}
	return settings, true, nil
}

// SaveSettings validates and stores settings.
func (s *Service) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.store.Set(ctx, store.KeySettings, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.logger.Debug("saved settings",
		"defaultTab", string(settings.DefaultTab),
		"defaultLength", settings.DefaultLength,
	)
	return nil
}

// ResetSettings stores and returns the hardcoded defaults.
func (s *Service) ResetSettings(ctx context.Context) (model.Settings, error) {
	defaults := model.DefaultSettings()
	if err := s.SaveSettings(ctx, defaults); err != nil {
		return model.Settings{}, err
	}
	return defaults, nil
}

// Seed stores settings only if no settings record exists yet.
// It reports whether the settings were written.
func (s *Service) Seed(ctx context.Context, settings model.Settings) (bool, error) {
	_, found, err := s.load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check settings: %w", err)
	}
	if found {
		return false, nil
	}
	if err := s.SaveSettings(ctx, settings); err != nil {
		return false, err
	}
	s.logger.Debug("seeded settings from config file")
	return true, nil
}

// Theme returns the stored theme. An unset or unreadable theme is light.
func (s *Service) Theme(ctx context.Context) model.Theme {
	var raw string
	err := s.store.Get(ctx, store.KeyTheme, &raw)
	if errors.Is(err, store.ErrNotFound) {
		return model.ThemeLight
	}
	if err != nil {
		s.logger.Warn("failed to load theme, using light", "error", err)
		return model.ThemeLight
	}

	theme, err := model.ParseTheme(raw)
	if err != nil {
		s.logger.Warn("stored theme is invalid, using light", "error", err)
		return model.ThemeLight
	}
	return theme
}

// SetTheme stores theme.
func (s *Service) SetTheme(ctx context.Context, theme model.Theme) error {
	if _, err := model.ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := s.store.Set(ctx, store.KeyTheme, theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// ToggleTheme flips the theme and returns the new value.
func (s *Service) ToggleTheme(ctx context.Context) (model.Theme, error) {
	next := s.Theme(ctx).Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// SeedTheme stores theme only if no theme is stored yet.
// It reports whether the theme was written.
func (s *Service) SeedTheme(ctx context.Context, theme model.Theme) (bool, error) {
	var raw string
	err := s.store.Get(ctx, store.KeyTheme, &raw)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("failed to check theme: %w", err)
	}
	if err := s.SetTheme(ctx, theme); err != nil {
		return false, err
	}
	s.logger.Debug("seeded theme from config file", "theme", theme)
	return true, nil
}
