// Package table provides the storage abstraction for giftstore's backing table.
//
// Table is the interface the store reads and writes through. Implementations
// must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryTable: in-memory table with deterministic scan order (tests, examples)
//   - dynamodb.Table: Amazon DynamoDB with paginated scans
//
// # Custom Implementations
//
// Implement the Table interface to support other key-value stores:
//
//	type Table interface {
//	    Scan(ctx) ([]Record, error)    // Read every record
//	    Put(ctx, rec) error            // Create or replace by primary key
//	}
//
// Backends report failures with ErrUnavailable (the store could not be
// reached or refused the credentials) or ErrRejected (the store refused a
// single write).
package table
