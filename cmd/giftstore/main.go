// Command giftstore seeds the gift table on first start and offers small
// list and put commands against it.
//
// Usage:
//
//	giftstore [-env file] [-create-table] [seed|list|put <json>]
//
// Exit codes: 0 success, 1 configuration error (including a missing or
// unparseable seed document), 2 store error (including writes the backend
// refuses), 64 usage error (including put input that is not a keyed JSON
// object).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hupe1980/giftstore"
	"github.com/hupe1980/giftstore/dataset"
	"github.com/hupe1980/giftstore/internal/config"
	"github.com/hupe1980/giftstore/table"
	"golang.org/x/time/rate"
)

const (
	exitOK     = 0
	exitConfig = 1
	exitStore  = 2
	exitUsage  = 64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, defaultBackends())
	stop()
	os.Exit(code)
}

// backends opens the external resources; tests replace them.
type backends struct {
	openSeed  func(ctx context.Context, cfg *config.Config) (dataset.Source, error)
	openTable func(ctx context.Context, cfg *config.Config) (table.Table, error)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, b backends) int {
	fs := flag.NewFlagSet("giftstore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", "", "load environment from `file` instead of ./.env")
	createTable := fs.Bool("create-table", false, "create the table if it does not exist")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: giftstore [-env file] [-create-table] [seed|list|put <json>]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	command := "seed"
	rest := fs.Args()
	if len(rest) > 0 {
		command, rest = rest[0], rest[1:]
	}

	switch {
	case command == "seed" || command == "list":
		if len(rest) != 0 {
			fs.Usage()
			return exitUsage
		}
	case command == "put":
		if len(rest) > 1 {
			fs.Usage()
			return exitUsage
		}
	default:
		fmt.Fprintf(stderr, "giftstore: unknown command %q\n", command)
		fs.Usage()
		return exitUsage
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}

	cfg, err := config.Load(envFiles...)
	if err != nil {
		fmt.Fprintf(stderr, "giftstore: %v\n", err)
		return exitConfig
	}
	if *createTable {
		cfg.CreateTable = true
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "giftstore: %v\n", err)
		return exitConfig
	}

	src, err := b.openSeed(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "giftstore: seed source: %v\n", err)
		return exitConfig
	}

	// Read the seed document before the table is opened.
	seed, err := dataset.Preload(ctx, src)
	if err != nil {
		fmt.Fprintf(stderr, "giftstore: cannot load seed data: %v\n", err)
		return exitConfig
	}

	tbl, err := b.openTable(ctx, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "giftstore: table %s: %v\n", cfg.Table, err)
		return exitStore
	}

	store := giftstore.New(tbl,
		giftstore.WithSeedSource(seed),
		giftstore.WithKeyAttribute(cfg.KeyAttribute),
		giftstore.WithSeedWriteRate(rate.Limit(cfg.SeedWriteRate), 1),
		giftstore.WithLogger(logger.WithTable(cfg.Table)),
	)

	if _, err := store.SeedIfEmpty(ctx); err != nil {
		fmt.Fprintf(stderr, "giftstore: seeding %s: %v\n", cfg.Table, err)
		if errors.Is(err, giftstore.ErrConfiguration) {
			return exitConfig
		}
		return exitStore
	}

	switch command {
	case "list":
		return list(ctx, store, stdout, stderr)
	case "put":
		return put(ctx, store, rest, stdin, stdout, stderr)
	default:
		return exitOK
	}
}

func list(ctx context.Context, store *giftstore.Store, stdout, stderr io.Writer) int {
	recs, err := store.ListAll(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "giftstore: list: %v\n", err)
		return exitStore
	}

	enc := json.NewEncoder(stdout)
	for _, rec := range recs {
		if err := enc.Encode(rec); err != nil {
			fmt.Fprintf(stderr, "giftstore: list: %v\n", err)
			return exitStore
		}
	}
	return exitOK
}

func put(ctx context.Context, store *giftstore.Store, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var in io.Reader = stdin
	if len(args) == 1 {
		in = strings.NewReader(args[0])
	}

	var rec table.Record
	if err := json.NewDecoder(in).Decode(&rec); err != nil {
		fmt.Fprintf(stderr, "giftstore: put: invalid JSON object: %v\n", err)
		return exitUsage
	}

	saved, err := store.Insert(ctx, rec)
	if err != nil {
		fmt.Fprintf(stderr, "giftstore: put: %v\n", err)
		if errors.Is(err, table.ErrInvalidRecord) {
			return exitUsage
		}
		return exitStore
	}

	if err := json.NewEncoder(stdout).Encode(saved); err != nil {
		fmt.Fprintf(stderr, "giftstore: put: %v\n", err)
		return exitStore
	}
	return exitOK
}
