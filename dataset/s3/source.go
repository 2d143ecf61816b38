package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/giftstore/dataset"
)

// Source implements dataset.Source for a single S3 object.
type Source struct {
	downloader *manager.Downloader
	bucket     string
	key        string
}

// NewSource creates a Source for s3://bucket/key.
// optFns tune the underlying downloader (part size, concurrency).
func NewSource(client manager.DownloadAPIClient, bucket, key string, optFns ...func(*manager.Downloader)) *Source {
	return &Source{
		downloader: manager.NewDownloader(client, optFns...),
		bucket:     bucket,
		key:        key,
	}
}

// Open downloads the object.
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	buf := manager.NewWriteAtBuffer(nil)

	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("%s: %w", s, dataset.ErrNotFound)
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%s: %w", s, dataset.ErrNotFound)
		}
		var nsb *types.NoSuchBucket
		if errors.As(err, &nsb) {
			return nil, fmt.Errorf("%s: %w", s, dataset.ErrNotFound)
		}
		return nil, fmt.Errorf("download %s: %w", s, err)
	}

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

func (s *Source) String() string {
	return "s3://" + s.bucket + "/" + s.key
}
