package generator

import (
	"fmt"

	"github.com/nao1215/cyberkeygen/internal/model"
)

// Generate dispatches a request to the matching generator.
//
// Unlike the individual generators it validates its input: a non-positive or
// oversized length and empty leet text are rejected before anything is drawn,
// so callers can skip recording history for them.
func Generate(src Source, req model.Request) (string, error) {
	switch req.Type {
	case model.EntryTypeRandom:
		if err := checkLength(req.Options.Length); err != nil {
			return "", err
		}
		return RandomPassword(src, req.Options), nil

	case model.EntryTypePIN:
		if err := checkLength(req.Options.Length); err != nil {
			return "", err
		}
		return PIN(src, req.Options.Length, req.Options.AvoidRepeating), nil

	case model.EntryTypeLeet:
		if req.Text == "" {
			return "", ErrEmptyText
		}
		return Leet(src, req.Text), nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, req.Type)
	}
}

func checkLength(length int) error {
	if length < 1 || length > model.MaxLength {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	return nil
}
