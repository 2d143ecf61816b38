// Package dataset loads the bundled seed dataset.
//
// A seed document is a JSON object whose "docs" field holds the records in
// the order they are written to the table:
//
//	{"docs": [{"id": "g1", "name": "Bike"}, {"id": "g2", "name": "Lamp"}]}
//
// Documents may be stored gzip, zstd or LZ4 (frame format) compressed; the
// format is detected from the leading magic bytes.
//
// A Source locates the document. File and Bytes are built in; the s3 and
// minio subpackages read it from object storage.
package dataset
