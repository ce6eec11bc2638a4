package history

import (
	"context"
	"fmt"

	"github.com/nao1215/cyberkeygen/internal/model"
	"github.com/nao1215/cyberkeygen/internal/store"
)

// AddFavorite prepends entry to the favorites.
// The same password cannot be added twice; the oldest favorite is evicted
// when the list is full.
func (s *Service) AddFavorite(ctx context.Context, entry model.HistoryEntry) error {
	if entry.Password == "" {
		return ErrEmptyValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.load(ctx, store.KeyFavorites)
	if err != nil {
		return err
	}
	for _, f := range favorites {
		if f.Password == entry.Password {
			return ErrAlreadyFavorite
		}
	}

	favorites = prepend(favorites, entry, MaxFavorites)
	if err := s.store.Set(ctx, store.KeyFavorites, favorites); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	s.logger.Debug("added favorite", "id", entry.ID, "size", len(favorites))
	return nil
}

// Favorite copies the history entry at index into the favorites.
func (s *Service) Favorite(ctx context.Context, index int) (model.HistoryEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return model.HistoryEntry{}, err
	}
	if index < 0 || index >= len(entries) {
		return model.HistoryEntry{}, fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, index, len(entries))
	}

	entry := entries[index]
	if err := s.AddFavorite(ctx, entry); err != nil {
		return model.HistoryEntry{}, err
	}
	return entry, nil
}

// Favorites returns the favorites, newest first.
func (s *Service) Favorites(ctx context.Context) ([]model.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, store.KeyFavorites)
}

// RemoveFavorite deletes the favorite at index (0 is the newest).
func (s *Service) RemoveFavorite(ctx context.Context, index int) (model.HistoryEntry, error) {
	return s.removeAt(ctx, store.KeyFavorites, index)
}
