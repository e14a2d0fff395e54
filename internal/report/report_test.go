package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	row := NewRow("example")
	require.NoError(t, row.Measure([]byte("AAABBC")))

	assert.EqualValues(t, 6, row.PixelSize)
	assert.EqualValues(t, 6, row.RLESize)
	assert.EqualValues(t, 2, row.HuffmanSize)
	assert.EqualValues(t, 9, row.HuffmanBits)
	assert.Greater(t, row.ZstdSize, int64(0))
	assert.EqualValues(t, -1, row.LossySize)
	assert.InDelta(t, 2.0/6.0, row.Ratio(row.HuffmanSize), 1e-9)
	assert.Zero(t, row.Ratio(row.LossySize))
}

func TestMeasure_Empty(t *testing.T) {
	row := NewRow("empty")
	require.NoError(t, row.Measure(nil))
	assert.Zero(t, row.PixelSize)
	assert.Zero(t, row.RLESize)
	assert.Zero(t, row.HuffmanSize)
	assert.Zero(t, row.Ratio(row.HuffmanSize))
}

func TestZstdSize(t *testing.T) {
	data := bytes.Repeat([]byte("pixels"), 4096)
	size, err := ZstdSize(data)
	require.NoError(t, err)
	assert.Less(t, size, int64(len(data)))

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1), zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	require.NoError(t, err)
	defer enc.Close()
	assert.EqualValues(t, len(enc.EncodeAll(data, nil)), size)
}

func TestWriteCSV(t *testing.T) {
	row := NewRow("a.png")
	row.OriginalSize = 100
	row.PixelSize = 64

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, []Row{row}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "name,original_bytes,jpeg_bytes,png_bytes,pixel_bytes,rle_bytes,huffman_bytes,huffman_bits,zstd_bytes", lines[0])
	assert.Equal(t, "a.png,100,-1,-1,64,-1,-1,-1,-1", lines[1])

	assert.ErrorIs(t, WriteCSV(&buf, nil), ErrNoRows)
}
