package giftstore

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/giftstore/dataset"
	"github.com/hupe1980/giftstore/table"
	"golang.org/x/time/rate"
)

// Store is the data-access facade over a single backing table.
//
// ListAll and Insert may be called concurrently; Store holds no locks and
// visibility follows the backing table. SeedIfEmpty is meant to be called
// once during startup, before concurrent use begins.
type Store struct {
	table        table.Table
	seedSource   dataset.Source
	keyAttribute string
	metrics      MetricsCollector
	logger       *Logger
	seedLimiter  *rate.Limiter
}

// New creates a Store on top of tbl.
func New(tbl table.Table, optFns ...Option) *Store {
	opts := applyOptions(optFns)

	return &Store{
		table:        tbl,
		seedSource:   opts.seedSource,
		keyAttribute: opts.keyAttribute,
		metrics:      opts.metricsCollector,
		logger:       opts.logger,
		seedLimiter:  opts.seedLimiter,
	}
}

// ListAll returns every record in the table.
func (s *Store) ListAll(ctx context.Context) ([]table.Record, error) {
	start := time.Now()
	recs, err := s.table.Scan(ctx)
	s.metrics.RecordScan(len(recs), time.Since(start), err)
	s.logger.LogScan(ctx, len(recs), err)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// Insert creates or replaces rec by primary key and returns it.
func (s *Store) Insert(ctx context.Context, rec table.Record) (table.Record, error) {
	start := time.Now()
	err := s.table.Put(ctx, rec)
	s.metrics.RecordInsert(time.Since(start), err)
	s.logger.LogInsert(ctx, s.keyOf(rec), err)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// SeedReport describes the outcome of a SeedIfEmpty call.
type SeedReport struct {
	// Source describes where the dataset was read from.
	Source string

	// Skipped is true when the table already held records.
	Skipped bool

	// Existing is the number of records found by the emptiness check.
	Existing int

	// Total is the number of records in the seed dataset.
	Total int

	// Inserted holds the dataset positions that were written.
	Inserted *roaring.Bitmap
}

// InsertedCount returns the number of dataset records written.
func (r *SeedReport) InsertedCount() int {
	if r == nil || r.Inserted == nil {
		return 0
	}
	return int(r.Inserted.GetCardinality())
}

// Partial reports whether an import started but did not write the whole dataset.
func (r *SeedReport) Partial() bool {
	return !r.Skipped && r.InsertedCount() > 0 && r.InsertedCount() < r.Total
}

// SeedIfEmpty imports the seed dataset when the table holds no records.
//
// The dataset is loaded first; a missing or unparseable dataset returns an
// error satisfying errors.Is(err, ErrConfiguration) without touching the
// table. If the scan returns zero records, every dataset record is inserted
// sequentially in dataset order. The first failed insert stops the import and
// is returned as a *SeedError.
//
// The returned report is never nil, also when an error is returned.
func (s *Store) SeedIfEmpty(ctx context.Context) (*SeedReport, error) {
	start := time.Now()
	report, err := s.seedIfEmpty(ctx)
	s.metrics.RecordSeed(report.InsertedCount(), report.Skipped, time.Since(start), err)
	s.logger.LogSeed(ctx, report, err)
	return report, err
}

func (s *Store) seedIfEmpty(ctx context.Context) (*SeedReport, error) {
	report := &SeedReport{
		Source:   s.seedSource.String(),
		Inserted: roaring.New(),
	}

	ds, err := dataset.Load(ctx, s.seedSource)
	if err != nil {
		return report, translateError(err)
	}
	report.Total = ds.Len()

	existing, err := s.ListAll(ctx)
	if err != nil {
		return report, err
	}
	if len(existing) > 0 {
		report.Skipped = true
		report.Existing = len(existing)
		return report, nil
	}

	for i := 0; i < ds.Len(); i++ {
		rec := ds.At(i)

		if s.seedLimiter != nil {
			if err := s.seedLimiter.Wait(ctx); err != nil {
				return report, &SeedError{Position: i, Key: s.keyOf(rec), cause: err}
			}
		}

		if _, err := s.Insert(ctx, rec); err != nil {
			return report, &SeedError{Position: i, Key: s.keyOf(rec), cause: err}
		}
		report.Inserted.Add(uint32(i))
	}

	return report, nil
}

// keyOf renders the record key for diagnostics; it never fails.
func (s *Store) keyOf(rec table.Record) string {
	v, ok := rec[s.keyAttribute]
	if !ok {
		return ""
	}
	return fmt.Sprint(v)
}
