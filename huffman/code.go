package huffman

import (
	"fmt"
	mathbits "math/bits"
	"sort"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest code, in bits, that a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low bits of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *first* bit in the
// sequence, instead of the last.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	return MakeReversedCode(hc.Size, hc.Bits)
}

// Append returns hc extended by one trailing bit.
func (hc Code) Append(bit uint64) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code %s cannot grow past %d bits", hc, MaxCodeSize)
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | (bit & 1)}
}

// HasPrefix reports whether p is a prefix of hc.  Every Code has the empty
// Code as a prefix, and every Code is a prefix of itself.
func (hc Code) HasPrefix(p Code) bool {
	if p.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-p.Size) == p.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

func reverseBits(size byte, bits uint64) uint64 {
	return mathbits.Reverse64(bits) >> (64 - size)
}

// CodeTable maps each Symbol present in the input to its Code.
type CodeTable map[Symbol]Code

// Symbols returns the symbols in the table in ascending order.
func (table CodeTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(table))
	for symbol := range table {
		out = append(out, symbol)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Canonical returns the canonical Huffman code having the same code length
// for every symbol as table.  Codes are assigned sequentially in order of
// (length, symbol), per the algorithm detailed at
// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.
func (table CodeTable) Canonical() CodeTable {
	out := make(CodeTable, len(table))
	if len(table) == 0 {
		return out
	}

	sorted := make(bySize, 0, len(table))
	for symbol, hc := range table {
		sorted = append(sorted, symbolAndSize{symbol, hc.Size})
	}
	sorted.Sort()

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		out[item.symbol] = MakeCode(item.size, nextCode)
		nextCode++
	}
	return out
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
