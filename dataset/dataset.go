package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/giftstore/table"
)

// DefaultPath is the seed file location, relative to the working directory.
var DefaultPath = filepath.Join("util", "import-mongo", "gifts.json")

var (
	// ErrNotFound is returned when the seed document does not exist.
	//
	// Sources should return an error that satisfies `errors.Is(err, ErrNotFound)`.
	// The default maps to `os.ErrNotExist`.
	ErrNotFound = os.ErrNotExist

	// ErrMalformed is returned when the seed document cannot be parsed.
	ErrMalformed = errors.New("malformed seed dataset")
)

// Dataset is an ordered, immutable sequence of seed records.
type Dataset struct {
	records []table.Record
}

// New creates a Dataset holding copies of recs.
func New(recs ...table.Record) *Dataset {
	d := &Dataset{records: make([]table.Record, len(recs))}
	for i, rec := range recs {
		d.records[i] = rec.Clone()
	}
	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// At returns a copy of the record at position i.
func (d *Dataset) At(i int) table.Record {
	return d.records[i].Clone()
}

// Records returns copies of all records in dataset order.
func (d *Dataset) Records() []table.Record {
	out := make([]table.Record, len(d.records))
	for i, rec := range d.records {
		out[i] = rec.Clone()
	}
	return out
}

type document struct {
	Docs *[]json.RawMessage `json:"docs"`
}

// Decode parses a seed document from r. Compressed input is unpacked first.
func Decode(r io.Reader) (*Dataset, error) {
	plain, closeFn, err := decompress(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	defer closeFn()

	dec := json.NewDecoder(plain)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	// The document must be the only value in the input.
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: trailing data after document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: trailing data: %w", ErrMalformed, err)
	}
	if doc.Docs == nil {
		return nil, fmt.Errorf("%w: missing \"docs\" array", ErrMalformed)
	}

	records := make([]table.Record, 0, len(*doc.Docs))
	for i, raw := range *doc.Docs {
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || raw[0] != '{' {
			return nil, fmt.Errorf("%w: docs[%d] is not an object", ErrMalformed, i)
		}
		var rec table.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: docs[%d]: %w", ErrMalformed, i, err)
		}
		records = append(records, rec)
	}

	return &Dataset{records: records}, nil
}

// Load opens src and decodes the seed document it holds.
func Load(ctx context.Context, src Source) (*Dataset, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	d, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return d, nil
}
