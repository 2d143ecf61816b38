// Package s3 provides an Amazon S3 implementation of the dataset.Source interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-1"))
//	src := s3.NewSource(awss3.NewFromConfig(cfg), "my-bucket", "seed/gifts.json.zst")
//
//	store := giftstore.New(tbl, giftstore.WithSeedSource(src))
//
// The object is fetched with the transfer manager's ranged, parallel
// downloader and buffered in memory before decoding.
package s3
