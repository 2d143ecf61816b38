package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Source locates a seed document.
type Source interface {
	// Open returns a reader for the raw document. A missing document yields
	// an error satisfying errors.Is(err, ErrNotFound).
	Open(ctx context.Context) (io.ReadCloser, error)

	// String describes the location for diagnostics.
	String() string
}

// FileSource reads the document from the local filesystem.
type FileSource struct {
	path string
}

// File returns a Source for the file at path.
func File(path string) *FileSource {
	return &FileSource{path: path}
}

// Open opens the file.
func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("seed file %s: %w", s.path, ErrNotFound)
		}
		return nil, fmt.Errorf("seed file %s: %w", s.path, err)
	}
	return f, nil
}

func (s *FileSource) String() string {
	return s.path
}

// BytesSource serves a document held in memory, e.g. one embedded with go:embed.
type BytesSource struct {
	name string
	data []byte
}

// Bytes returns a Source over data. name is used in diagnostics.
func Bytes(name string, data []byte) *BytesSource {
	return &BytesSource{name: name, data: data}
}

// Open returns a reader over the data.
func (s *BytesSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func (s *BytesSource) String() string {
	return s.name
}
