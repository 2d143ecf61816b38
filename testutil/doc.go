// Package testutil provides testing utilities for giftstore.
//
// This package is intended for use in tests only. It generates
// deterministic gift records and seed documents.
//
//	rng := testutil.NewRNG(4711)
//	gifts := rng.Gifts(50)              // unique ids, shuffled order
//	doc := testutil.SeedDocument(gifts) // {"docs":[...]}
package testutil
