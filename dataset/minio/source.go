package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/giftstore/dataset"
	"github.com/minio/minio-go/v7"
)

// Source implements dataset.Source for a single MinIO object.
type Source struct {
	client *minio.Client
	bucket string
	key    string
}

// NewSource creates a Source for the object key in bucket.
func NewSource(client *minio.Client, bucket, key string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// Open streams the object.
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.translateError(err)
	}

	// GetObject is lazy; Stat surfaces a missing object before decoding starts.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, s.translateError(err)
	}

	return obj, nil
}

func (s *Source) String() string {
	return "minio://" + s.bucket + "/" + s.key
}

func (s *Source) translateError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return fmt.Errorf("%s: %w", s, dataset.ErrNotFound)
	default:
		return fmt.Errorf("get %s: %w", s, err)
	}
}
