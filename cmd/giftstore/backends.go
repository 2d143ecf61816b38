package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/giftstore"
	"github.com/hupe1980/giftstore/dataset"
	minioseed "github.com/hupe1980/giftstore/dataset/minio"
	s3seed "github.com/hupe1980/giftstore/dataset/s3"
	"github.com/hupe1980/giftstore/internal/config"
	"github.com/hupe1980/giftstore/table"
	"github.com/hupe1980/giftstore/table/dynamodb"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func defaultBackends() backends {
	return backends{
		openSeed:  openSeedSource,
		openTable: openDynamoDBTable,
	}
}

func openSeedSource(ctx context.Context, cfg *config.Config) (dataset.Source, error) {
	loc, err := config.ParseSeedLocation(cfg.SeedSource)
	if err != nil {
		return nil, err
	}

	switch loc.Scheme {
	case config.SchemeS3:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("load AWS config: %w", err)
		}
		return s3seed.NewSource(s3.NewFromConfig(awsCfg), loc.Bucket, loc.Key), nil
	case config.SchemeMinIO:
		client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: cfg.MinIOUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("create minio client: %w", err)
		}
		return minioseed.NewSource(client, loc.Bucket, loc.Key), nil
	default:
		return dataset.File(loc.Path), nil
	}
}

func openDynamoDBTable(ctx context.Context, cfg *config.Config) (table.Table, error) {
	tbl, err := dynamodb.New(ctx, cfg.Table, func(o *dynamodb.Options) {
		o.Region = cfg.Region
		o.Endpoint = cfg.Endpoint
		o.KeyAttribute = cfg.KeyAttribute
	})
	if err != nil {
		return nil, err
	}

	if cfg.CreateTable {
		if err := tbl.EnsureTable(ctx, 0); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

func newLogger(cfg *config.Config, w io.Writer) (*giftstore.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return giftstore.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return giftstore.NewLogger(slog.NewTextHandler(w, opts)), nil
}
