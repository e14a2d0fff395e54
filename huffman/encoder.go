package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// AssignCodes walks t and returns the Code for every leaf: '0' for each left
// edge and '1' for each right edge on the path from the root.
//
// A tree consisting of a single leaf would give that leaf the empty Code,
// which cannot be packed; it is assigned the one-bit Code "0" instead.
//
func AssignCodes(t *Tree) CodeTable {
	table := make(CodeTable, t.Leaves())
	t.walkLeaves(func(symbol Symbol, _ uint64, path Code) {
		if path.Size == 0 {
			path = MakeCode(1, 0)
		}
		table[symbol] = path
	})
	assert.Assertf(len(table) == t.Leaves(), "assigned %d codes for %d leaves", len(table), t.Leaves())
	return table
}

// Encoder holds the Huffman code built for one FrequencyTable.
type Encoder struct {
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the given frequencies.  Symbols with a
// frequency of 0 receive no code.  It returns ErrEmptyInput if no symbol has
// a non-zero frequency, in which case the Encoder is left unchanged.
//
func (e *Encoder) Init(freqs *FrequencyTable) error {
	t, err := BuildTree(freqs)
	if err != nil {
		return err
	}
	e.InitTable(AssignCodes(t))
	return nil
}

// InitTable initializes this Encoder from an existing CodeTable, such as the
// result of CodeTable.Canonical.
func (e *Encoder) InitTable(table CodeTable) {
	var codes [NumSymbols]Code
	var minSize, maxSize byte
	first := true
	for symbol, hc := range table {
		assert.Assertf(hc.Size != 0, "symbol %d has an empty code", symbol)
		codes[symbol] = hc
		if first {
			first = false
			minSize = hc.Size
			maxSize = hc.Size
		} else if minSize > hc.Size {
			minSize = hc.Size
		} else if maxSize < hc.Size {
			maxSize = hc.Size
		}
	}

	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode returns the Code for a Symbol.  The second return value is false if
// the Symbol was absent from the frequencies this Encoder was built from.
func (e Encoder) Encode(symbol Symbol) (Code, bool) {
	hc := e.codes[symbol]
	return hc, hc.Size != 0
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// Table returns a new CodeTable holding one entry per encodable Symbol.
func (e Encoder) Table() CodeTable {
	table := make(CodeTable)
	for symbol, hc := range e.codes {
		if hc.Size != 0 {
			table[Symbol(symbol)] = hc
		}
	}
	return table
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols that have no code.
func (e Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range e.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a code are omitted.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol, hc := range e.codes {
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Result is the output of Encode.  Table and Data must be kept together for
// the packed bits to mean anything.
type Result struct {
	Table CodeTable
	Data  []byte

	// Bits is the number of meaningful bits in Data; the rest is padding.
	Bits int64
}

// Padding returns the number of zero bits appended to complete the last
// byte of Data.
func (r *Result) Padding() int {
	return len(r.Data)*8 - int(r.Bits)
}

// Encode builds a Huffman code for data and packs data with it.  It returns
// ErrEmptyInput for empty data.  On failure no partial Result is returned.
func Encode(data []byte) (*Result, error) {
	return encode(data, false)
}

// EncodeCanonical is like Encode, but packs data with the canonical code
// having the same code lengths.
func EncodeCanonical(data []byte) (*Result, error) {
	return encode(data, true)
}

func encode(data []byte, canonical bool) (*Result, error) {
	freqs := CountFrequencies(data)
	t, err := BuildTree(&freqs)
	if err != nil {
		return nil, err
	}

	table := AssignCodes(t)
	if canonical {
		table = table.Canonical()
	}

	packed, bits, err := PackBytes(data, table)
	if err != nil {
		return nil, err
	}
	return &Result{Table: table, Data: packed, Bits: bits}, nil
}
