package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/cyberkeygen/internal/model"
	"github.com/nao1215/cyberkeygen/internal/store"
	"github.com/nao1215/cyberkeygen/internal/strength"
)

const (
	// MaxHistory is the number of history entries kept.
	MaxHistory = 20

	// MaxFavorites is the number of favorites kept.
	MaxFavorites = 10
)

// Service manages the history and favorites lists.
type Service struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	// mu serializes read-modify-write sequences on both lists.
	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock sets the function used to timestamp new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service on top of st.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record scores value, stamps it and prepends it to the history.
// The oldest entry is evicted when the list is full.
func (s *Service) Record(ctx context.Context, value string, entryType model.EntryType) (model.HistoryEntry, error) {
	if value == "" {
		return model.HistoryEntry{}, ErrEmptyValue
	}

	entry := model.NewHistoryEntry(value, entryType, strength.Level(value), s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx, store.KeyHistory)
	if err != nil {
		return model.HistoryEntry{}, err
	}

	entries = prepend(entries, entry, MaxHistory)
	if err := s.store.Set(ctx, store.KeyHistory, entries); err != nil {
		return model.HistoryEntry{}, fmt.Errorf("failed to save history: %w", err)
	}

	s.logger.Debug("recorded history entry",
		"id", entry.ID,
		"type", string(entry.Type),
		"strength", entry.Strength,
		"size", len(entries),
	)
	return entry, nil
}

// List returns the history, newest first.
func (s *Service) List(ctx context.Context) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, store.KeyHistory)
}

// Remove deletes the history entry at index (0 is the newest).
func (s *Service) Remove(ctx context.Context, index int) (model.HistoryEntry, error) {
	return s.removeAt(ctx, store.KeyHistory, index)
}

// RemoveByID deletes the history entry with the given ID.
func (s *Service) RemoveByID(ctx context.Context, id string) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx, store.KeyHistory)
	if err != nil {
		return model.HistoryEntry{}, err
	}

	for i, e := range entries {
		if e.ID == id {
			return s.deleteLocked(ctx, store.KeyHistory, entries, i)
		}
	}
	return model.HistoryEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// Clear empties the history. Favorites are kept.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(ctx, store.KeyHistory, []model.HistoryEntry{}); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	s.logger.Debug("cleared history")
	return nil
}

// load reads a list. A missing key is an empty list.
// Callers must hold s.mu.
func (s *Service) load(ctx context.Context, key string) ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	err := s.store.Get(ctx, key, &entries)
	if errors.Is(err, store.ErrNotFound) {
		return []model.HistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}
	return entries, nil
}

func (s *Service) removeAt(ctx context.Context, key string, index int) (model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx, key)
	if err != nil {
		return model.HistoryEntry{}, err
	}
	if index < 0 || index >= len(entries) {
		return model.HistoryEntry{}, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(entries))
	}
	return s.deleteLocked(ctx, key, entries, index)
}

// deleteLocked removes entries[index] and saves the list.
// Callers must hold s.mu.
func (s *Service) deleteLocked(ctx context.Context, key string, entries []model.HistoryEntry, index int) (model.HistoryEntry, error) {
	removed := entries[index]
	entries = append(entries[:index], entries[index+1:]...)
	if err := s.store.Set(ctx, key, entries); err != nil {
		return model.HistoryEntry{}, fmt.Errorf("failed to save %s: %w", key, err)
	}
	s.logger.Debug("removed entry", "key", key, "id", removed.ID, "size", len(entries))
	return removed, nil
}

// prepend puts entry first and truncates the list to limit.
func prepend(entries []model.HistoryEntry, entry model.HistoryEntry, limit int) []model.HistoryEntry {
	out := make([]model.HistoryEntry, 0, min(len(entries)+1, limit))
	out = append(out, entry)
	for _, e := range entries {
		if len(out) == limit {
			break
		}
		out = append(out, e)
	}
	return out
}
