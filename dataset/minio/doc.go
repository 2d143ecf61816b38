// Package minio provides a MinIO (and S3-compatible storage) implementation
// of the dataset.Source interface.
//
// # Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	})
//	src := giftminio.NewSource(client, "seed", "gifts.json")
package minio
