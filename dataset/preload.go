package dataset

import (
	"context"
	"fmt"
	"io"
)

// Preload reads src once, checks that it decodes, and returns an in-memory
// Source serving the same bytes under the same name. Startup code uses it so
// a missing or broken seed document is reported before any other work.
func Preload(ctx context.Context, src Source) (*BytesSource, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}

	b := Bytes(src.String(), data)
	if _, err := Load(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
