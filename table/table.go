package table

import (
	"context"
	"errors"
	"fmt"
)

// DefaultKeyAttribute is the primary key attribute used when none is configured.
const DefaultKeyAttribute = "id"

var (
	// ErrUnavailable is returned when the backing store cannot be reached,
	// rejects the credentials, or the table does not exist.
	ErrUnavailable = errors.New("table unavailable")

	// ErrRejected is returned when the backing store refuses an individual
	// write (validation, throttling, conditional failure).
	ErrRejected = errors.New("write rejected")

	// ErrInvalidRecord is returned when a record has no usable primary key.
	// It satisfies errors.Is(err, ErrRejected).
	ErrInvalidRecord = fmt.Errorf("%w: invalid record", ErrRejected)
)

// Table is a single key-value table holding Records.
type Table interface {
	// Scan returns every record in the table.
	Scan(ctx context.Context) ([]Record, error)

	// Put creates or replaces the record stored under rec's primary key.
	Put(ctx context.Context, rec Record) error
}

// Record is one catalog entry: an opaque mapping of field name to value.
type Record map[string]any

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// KeyOf returns the primary key of rec stored under attr.
// The key must be a non-empty string.
func KeyOf(rec Record, attr string) (string, error) {
	if attr == "" {
		attr = DefaultKeyAttribute
	}
	v, ok := rec[attr]
	if !ok {
		return "", fmt.Errorf("%w: missing key attribute %q", ErrInvalidRecord, attr)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: key attribute %q must be a string, got %T", ErrInvalidRecord, attr, v)
	}
	if s == "" {
		return "", fmt.Errorf("%w: key attribute %q is empty", ErrInvalidRecord, attr)
	}
	return s, nil
}
