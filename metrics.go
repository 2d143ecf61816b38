package giftstore

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordScan is called after each full-table scan.
	// items is the number of records returned.
	RecordScan(items int, duration time.Duration, err error)

	// RecordInsert is called after each insert operation.
	RecordInsert(duration time.Duration, err error)

	// RecordSeed is called after each SeedIfEmpty call.
	// inserted is the number of dataset records written, skipped reports a
	// non-empty table.
	RecordSeed(inserted int, skipped bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordScan(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordInsert(time.Duration, error)          {}
func (NoopMetricsCollector) RecordSeed(int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ScanCount        atomic.Int64
	ScanErrors       atomic.Int64
	ScanItems        atomic.Int64
	ScanTotalNanos   atomic.Int64
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	SeedCount        atomic.Int64
	SeedSkipped      atomic.Int64
	SeedErrors       atomic.Int64
	SeedInserted     atomic.Int64
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(items int, duration time.Duration, err error) {
	b.ScanCount.Add(1)
	b.ScanItems.Add(int64(items))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanErrors.Add(1)
	}
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordSeed implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSeed(inserted int, skipped bool, duration time.Duration, err error) {
	b.SeedCount.Add(1)
	b.SeedInserted.Add(int64(inserted))
	if skipped {
		b.SeedSkipped.Add(1)
	}
	if err != nil {
		b.SeedErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ScanCount:      b.ScanCount.Load(),
		ScanErrors:     b.ScanErrors.Load(),
		ScanItems:      b.ScanItems.Load(),
		ScanAvgNanos:   b.getAvgScanNanos(),
		InsertCount:    b.InsertCount.Load(),
		InsertErrors:   b.InsertErrors.Load(),
		InsertAvgNanos: b.getAvgInsertNanos(),
		SeedCount:      b.SeedCount.Load(),
		SeedSkipped:    b.SeedSkipped.Load(),
		SeedErrors:     b.SeedErrors.Load(),
		SeedInserted:   b.SeedInserted.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgScanNanos() int64 {
	count := b.ScanCount.Load()
	if count == 0 {
		return 0
	}
	return b.ScanTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.InsertCount.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ScanCount      int64
	ScanErrors     int64
	ScanItems      int64
	ScanAvgNanos   int64
	InsertCount    int64
	InsertErrors   int64
	InsertAvgNanos int64
	SeedCount      int64
	SeedSkipped    int64
	SeedErrors     int64
	SeedInserted   int64
}
