package huffman

// FrequencyTable counts the occurrences of each Symbol in one input.
// Symbols with a count of zero are absent.
type FrequencyTable [NumSymbols]uint64

// CountFrequencies returns the FrequencyTable of data.  Empty data yields an
// empty table, which BuildTree rejects with ErrEmptyInput.
func CountFrequencies(data []byte) FrequencyTable {
	var freqs FrequencyTable
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}

// Len returns the number of distinct symbols present.
func (freqs *FrequencyTable) Len() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freqs *FrequencyTable) Total() uint64 {
	var total uint64
	for _, freq := range freqs {
		total = addSaturating(total, freq)
	}
	return total
}

// Symbols returns the present symbols in ascending order.
func (freqs *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, NumSymbols)
	for symbol, freq := range freqs {
		if freq != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}
