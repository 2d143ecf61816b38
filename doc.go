// Package giftstore provides the data-access layer for the gift catalog table.
//
// A Store lists and writes records in a single key-value table and seeds the
// table from a bundled JSON dataset when it is empty:
//
//   - ListAll: full-table scan (backends follow continuation keys to the end)
//   - Insert: create or replace one record by primary key
//   - SeedIfEmpty: one-time import of the seed dataset into an empty table
//
// # Quick Start
//
//	ctx := context.Background()
//	tbl, err := dynamodb.New(ctx, "giftapp-data")
//	if err != nil {
//	    return err
//	}
//
//	store := giftstore.New(tbl,
//	    giftstore.WithSeedSource(dataset.File("util/import-mongo/gifts.json")),
//	    giftstore.WithLogger(giftstore.NewTextLogger(slog.LevelInfo)),
//	)
//
//	// Call once during startup.
//	if _, err := store.SeedIfEmpty(ctx); err != nil {
//	    if errors.Is(err, giftstore.ErrConfiguration) {
//	        // seed file missing or unparseable
//	    }
//	    return err
//	}
//
//	gifts, err := store.ListAll(ctx)
//
// # Seeding
//
// "Empty" means the scan returned zero records. A table holding even one
// unrelated row is left untouched. Records are inserted one at a time in
// dataset order; the first failure stops the import and is reported as a
// *SeedError. A later SeedIfEmpty call sees a non-empty table and does not
// resume a partial import.
//
// For tests and examples, table.NewMemoryTable provides a deterministic
// in-memory backend.
package giftstore
