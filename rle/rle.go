package rle

import "fmt"

// MaxRunLength is the largest count a single Run can hold.
const MaxRunLength = 0xff

// Run represents a single run of a particular byte value.
type Run struct {
	// Value is the byte value for this run.
	Value byte
	// Count gives the number of times the byte occurs in the run. It is
	// always between 1 and MaxRunLength.
	Count byte
}

func (r Run) String() string {
	return fmt.Sprintf("%02x×%d", r.Value, r.Count)
}

// Runs splits data into runs of identical bytes. A maximal run longer than
// MaxRunLength becomes several consecutive Runs with the same Value, all but
// the last of which have a Count of MaxRunLength.
func Runs(data []byte) []Run {
	var runs []Run
	for i := 0; i < len(data); {
		value := data[i]
		runLength := 1
		for i+runLength < len(data) && data[i+runLength] == value && runLength < MaxRunLength {
			runLength++
		}
		runs = append(runs, Run{Value: value, Count: byte(runLength)})
		i += runLength
	}
	return runs
}

// Encode returns the run-length encoding of data: for every Run, its value
// followed by its count. Empty data gives empty output.
func Encode(data []byte) []byte {
	runs := Runs(data)
	out := make([]byte, 0, 2*len(runs))
	for _, run := range runs {
		out = append(out, run.Value, run.Count)
	}
	return out
}
