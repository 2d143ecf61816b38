package giftstore

import (
	"log/slog"

	"github.com/hupe1980/giftstore/dataset"
	"github.com/hupe1980/giftstore/table"
	"golang.org/x/time/rate"
)

type options struct {
	seedSource       dataset.Source
	keyAttribute     string
	metricsCollector MetricsCollector
	logger           *Logger
	seedLimiter      *rate.Limiter
}

// Option configures Store constructor behavior.
type Option func(*options)

// WithSeedSource configures where SeedIfEmpty reads the seed dataset from.
// Defaults to the file at dataset.DefaultPath.
func WithSeedSource(src dataset.Source) Option {
	return func(o *options) {
		if src == nil {
			src = dataset.File(dataset.DefaultPath)
		}
		o.seedSource = src
	}
}

// WithKeyAttribute names the primary key attribute used in logs and
// SeedError. It must match the backend's key attribute. Defaults to "id".
func WithKeyAttribute(attr string) Option {
	return func(o *options) {
		if attr == "" {
			attr = table.DefaultKeyAttribute
		}
		o.keyAttribute = attr
	}
}

// WithSeedWriteRate paces seed inserts to at most limit per second with the
// given burst, e.g. to stay within provisioned write capacity. Inserts stay
// sequential and ordered. A limit <= 0 or rate.Inf disables pacing (default).
//
// Example:
//
//	store := giftstore.New(tbl, giftstore.WithSeedWriteRate(25, 1))
func WithSeedWriteRate(limit rate.Limit, burst int) Option {
	return func(o *options) {
		if limit <= 0 || limit == rate.Inf {
			o.seedLimiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.seedLimiter = rate.NewLimiter(limit, burst)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &giftstore.BasicMetricsCollector{}
//	store := giftstore.New(tbl, giftstore.WithMetricsCollector(metrics))
//	// ... use store ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Avg latency: %dns\n", stats.InsertCount, stats.InsertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := giftstore.NewJSONLogger(slog.LevelInfo)
//	store := giftstore.New(tbl, giftstore.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		seedSource:       dataset.File(dataset.DefaultPath),
		keyAttribute:     table.DefaultKeyAttribute,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
