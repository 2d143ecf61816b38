package giftstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/giftstore/table"
)

var (
	// ErrConfiguration is returned when the seed dataset is missing or
	// cannot be parsed. The store cannot be seeded and callers should not
	// continue startup.
	ErrConfiguration = errors.New("configuration error")

	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached or refuses the credentials.
	//
	// The default maps to `table.ErrUnavailable`.
	ErrStoreUnavailable = table.ErrUnavailable

	// ErrWriteRejected is returned when the backing store refuses a single
	// write (malformed item, validation, throttling).
	//
	// The default maps to `table.ErrRejected`.
	ErrWriteRejected = table.ErrRejected
)

// SeedError reports the dataset record whose insert aborted seeding.
// Records before Position were written; records from Position on were not.
//
// The original underlying error can be accessed via errors.Unwrap.
type SeedError struct {
	Position int
	Key      string
	cause    error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed record %d (key %q): %v", e.Position, e.Key, e.cause)
}

func (e *SeedError) Unwrap() error { return e.cause }

// translateError maps dataset loading failures onto ErrConfiguration.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrConfiguration, err)
}
