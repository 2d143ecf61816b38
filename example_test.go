package giftstore_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/giftstore"
	"github.com/hupe1980/giftstore/dataset"
	"github.com/hupe1980/giftstore/table"
)

func Example() {
	ctx := context.Background()

	seed := dataset.Bytes("gifts.json", []byte(`{"docs":[{"id":"g1","name":"Bike"},{"id":"g2","name":"Lamp"}]}`))
	store := giftstore.New(table.NewMemoryTable("id"), giftstore.WithSeedSource(seed))

	report, err := store.SeedIfEmpty(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("inserted:", report.InsertedCount())

	gifts, err := store.ListAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, gift := range gifts {
		fmt.Println(gift["id"], gift["name"])
	}

	// Output:
	// inserted: 2
	// g1 Bike
	// g2 Lamp
}

func ExampleStore_SeedIfEmpty_missingSeedFile() {
	store := giftstore.New(table.NewMemoryTable("id"),
		giftstore.WithSeedSource(dataset.File("does/not/exist.json")),
	)

	_, err := store.SeedIfEmpty(context.Background())
	fmt.Println(errors.Is(err, giftstore.ErrConfiguration))

	// Output:
	// true
}

func ExampleBasicMetricsCollector() {
	ctx := context.Background()
	metrics := &giftstore.BasicMetricsCollector{}
	store := giftstore.New(table.NewMemoryTable("id"), giftstore.WithMetricsCollector(metrics))

	_, _ = store.Insert(ctx, table.Record{"id": "g1"})
	_, _ = store.ListAll(ctx)

	stats := metrics.GetStats()
	fmt.Println(stats.InsertCount, stats.ScanCount, stats.ScanItems)

	// Output:
	// 1 1 1
}
