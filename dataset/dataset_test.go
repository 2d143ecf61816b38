package dataset

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/giftstore/table"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const giftsDoc = `{"docs":[{"id":"g1","name":"Bike"},{"id":"g2","name":"Lamp"}]}`

func TestDecode(t *testing.T) {
	d, err := Decode(strings.NewReader(giftsDoc))
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, table.Record{"id": "g1", "name": "Bike"}, d.At(0))
	assert.Equal(t, table.Record{"id": "g2", "name": "Lamp"}, d.At(1))
}

func TestDecode_EmptyDocs(t *testing.T) {
	d, err := Decode(strings.NewReader(`{"docs":[]}`))
	require.NoError(t, err)
	assert.Zero(t, d.Len())
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty input", ``},
		{"not json", `docs: []`},
		{"missing docs", `{"items":[]}`},
		{"null docs", `{"docs":null}`},
		{"docs not array", `{"docs":{"id":"g1"}}`},
		{"element not object", `{"docs":[{"id":"g1"}, "g2"]}`},
		{"truncated", `{"docs":[{"id":"g1"`},
		{"trailing garbage", `{"docs":[{"id":"g1"}]} this is not json`},
		{"concatenated documents", `{"docs":[{"id":"g1"}]}{"docs":[{"id":"g2"}]}`},
		{"trailing array", `{"docs":[{"id":"g1"}]}` + "\n[]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecode_TrailingWhitespace(t *testing.T) {
	d, err := Decode(strings.NewReader(giftsDoc + "\n\n\t "))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestDecode_Compressed(t *testing.T) {
	compressors := map[string]func(t *testing.T, w io.Writer) io.WriteCloser{
		"gzip": func(_ *testing.T, w io.Writer) io.WriteCloser { return gzip.NewWriter(w) },
		"zstd": func(t *testing.T, w io.Writer) io.WriteCloser {
			enc, err := zstd.NewWriter(w)
			require.NoError(t, err)
			return enc
		},
		"lz4": func(_ *testing.T, w io.Writer) io.WriteCloser { return lz4.NewWriter(w) },
	}

	for name, newWriter := range compressors {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			w := newWriter(t, &buf)
			_, err := w.Write([]byte(giftsDoc))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			d, err := Decode(&buf)
			require.NoError(t, err)
			require.Equal(t, 2, d.Len())
			assert.Equal(t, "g1", d.At(0)["id"])
			assert.Equal(t, "g2", d.At(1)["id"])
		})
	}
}

func TestDecode_CorruptGzip(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte{0x1f, 0x8b, 0x00, 0x01, 0x02}))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDataset_Immutable(t *testing.T) {
	d := New(table.Record{"id": "g1", "name": "Bike"})

	recs := d.Records()
	recs[0]["name"] = "Car"
	rec := d.At(0)
	rec["name"] = "Boat"

	assert.Equal(t, "Bike", d.At(0)["name"])
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gifts.json")
	require.NoError(t, os.WriteFile(path, []byte(giftsDoc), 0o600))

	d, err := Load(context.Background(), File(path))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestLoad_FileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := Load(context.Background(), File(path))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MalformedNamesSource(t *testing.T) {
	_, err := Load(context.Background(), Bytes("embedded.json", []byte(`{}`)))
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "embedded.json")
}

func TestLoad_Bytes(t *testing.T) {
	d, err := Load(context.Background(), Bytes("embedded.json", []byte(giftsDoc)))
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := File("gifts.json").Open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = Bytes("b", nil).Open(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
