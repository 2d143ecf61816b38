package dataset

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onceSource fails every Open after the first.
type onceSource struct {
	opened int
}

func (s *onceSource) Open(ctx context.Context) (io.ReadCloser, error) {
	s.opened++
	if s.opened > 1 {
		return nil, errors.New("already consumed")
	}
	return Bytes("once", []byte(giftsDoc)).Open(ctx)
}

func (s *onceSource) String() string { return "once://gifts.json" }

func TestPreload(t *testing.T) {
	ctx := context.Background()
	src := &onceSource{}

	pre, err := Preload(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, "once://gifts.json", pre.String())

	for i := 0; i < 2; i++ {
		d, err := Load(ctx, pre)
		require.NoError(t, err)
		assert.Equal(t, 2, d.Len())
	}
	assert.Equal(t, 1, src.opened)
}

func TestPreload_NotFound(t *testing.T) {
	_, err := Preload(context.Background(), File(filepath.Join(t.TempDir(), "gifts.json")))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreload_Malformed(t *testing.T) {
	_, err := Preload(context.Background(), Bytes("bad.json", []byte(`{"docs":"nope"}`)))
	assert.ErrorIs(t, err, ErrMalformed)
}
