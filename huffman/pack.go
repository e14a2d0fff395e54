package huffman

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
)

// Pack writes the code of each byte of data, in order, to w as one
// continuous bit stream, first bit of each code first.  The last byte is
// padded on the low end with zero bits.
//
// The returned int64 is the number of meaningful bits written, excluding
// padding.  The padding length is not written anywhere; callers that need it
// must keep the bit count.
//
// Every byte of data is checked against table before anything is written.
// A byte with no code fails with an *UnknownSymbolError and w is untouched.
//
func Pack(w io.Writer, data []byte, table CodeTable) (int64, error) {
	var bits int64
	for offset, b := range data {
		hc, found := table[Symbol(b)]
		if !found || hc.Size == 0 {
			return 0, &UnknownSymbolError{Symbol: Symbol(b), Offset: offset}
		}
		bits += int64(hc.Size)
	}

	bw := bitio.NewWriter(w)
	for _, b := range data {
		hc := table[Symbol(b)]
		if err := bw.WriteBits(hc.Bits, hc.Size); err != nil {
			return 0, err
		}
	}
	if _, err := bw.Align(); err != nil {
		return 0, err
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}
	return bits, nil
}

// PackBytes is a convenience function wrapping Pack.  It returns the packed
// bytes in a new slice, along with the number of meaningful bits.
func PackBytes(data []byte, table CodeTable) ([]byte, int64, error) {
	var buf bytes.Buffer
	bits, err := Pack(&buf, data, table)
	if err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), bits, nil
}
