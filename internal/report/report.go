// Package report collects the sizes produced by each compression path for
// one input and writes them out as CSV.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/ashishtyagi009/Image-Compression/huffman"
	"github.com/ashishtyagi009/Image-Compression/rle"
	"github.com/gocarina/gocsv"
	"github.com/klauspost/compress/zstd"
)

// Row holds every size measured for one input. Sizes that were not measured
// are -1.
type Row struct {
	Name         string `csv:"name"`
	OriginalSize int64  `csv:"original_bytes"`
	LossySize    int64  `csv:"jpeg_bytes"`
	LosslessSize int64  `csv:"png_bytes"`
	PixelSize    int64  `csv:"pixel_bytes"`
	RLESize      int64  `csv:"rle_bytes"`
	HuffmanSize  int64  `csv:"huffman_bytes"`
	HuffmanBits  int64  `csv:"huffman_bits"`
	ZstdSize     int64  `csv:"zstd_bytes"`
}

// NewRow returns a Row for name with every size unmeasured.
func NewRow(name string) Row {
	return Row{
		Name:         name,
		OriginalSize: -1,
		LossySize:    -1,
		LosslessSize: -1,
		PixelSize:    -1,
		RLESize:      -1,
		HuffmanSize:  -1,
		HuffmanBits:  -1,
		ZstdSize:     -1,
	}
}

// Measure runs the run-length and Huffman transforms, and zstd as a
// baseline, over data and records the output sizes in row. The two
// transforms are run independently on the same input.
func (row *Row) Measure(data []byte) error {
	row.PixelSize = int64(len(data))
	row.RLESize = int64(len(rle.Encode(data)))

	if len(data) == 0 {
		row.HuffmanSize, row.HuffmanBits = 0, 0
	} else {
		result, err := huffman.Encode(data)
		if err != nil {
			return fmt.Errorf("huffman: %w", err)
		}
		row.HuffmanSize = int64(len(result.Data))
		row.HuffmanBits = result.Bits
	}

	size, err := ZstdSize(data)
	if err != nil {
		return err
	}
	row.ZstdSize = size
	return nil
}

// Ratio returns compressed/PixelSize, or 0 if either is unmeasured.
func (row Row) Ratio(compressed int64) float64 {
	if row.PixelSize <= 0 || compressed < 0 {
		return 0
	}
	return float64(compressed) / float64(row.PixelSize)
}

// ZstdSize returns the size of data after zstd compression.
func ZstdSize(data []byte) (int64, error) {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return -1, fmt.Errorf("zstd encoder: %w", err)
	}
	defer enc.Close()
	return int64(len(enc.EncodeAll(data, nil))), nil
}

// ErrNoRows is returned by WriteCSV when there is nothing to write.
var ErrNoRows = errors.New("report: no rows")

// WriteCSV writes rows, with a header line, to w.
func WriteCSV(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return ErrNoRows
	}
	return gocsv.Marshal(rows, w)
}
