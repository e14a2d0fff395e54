package huffman

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInputs() map[string][]byte {
	rng := rand.New(rand.NewSource(1))

	random := make([]byte, 4096)
	rng.Read(random)

	skewed := make([]byte, 2048)
	for i := range skewed {
		// Roughly geometric: most bytes are small.
		v := int(rng.ExpFloat64() * 3)
		if v > 0xff {
			v = 0xff
		}
		skewed[i] = byte(v)
	}

	fib := []byte{}
	a, b := 1, 1
	for symbol := 0; symbol < 12; symbol++ {
		fib = append(fib, bytes.Repeat([]byte{byte(symbol)}, a)...)
		a, b = b, a+b
	}

	allBytes := make([]byte, NumSymbols)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	return map[string][]byte{
		"single":    {0x42},
		"two":       {0x00, 0xff},
		"example":   []byte("AAABBC"),
		"text":      []byte("the quick brown fox jumps over the lazy dog"),
		"random":    random,
		"skewed":    skewed,
		"fibonacci": fib,
		"all_bytes": allBytes,
	}
}

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies([]byte("AAABBC"))
	assert.EqualValues(t, 3, freqs['A'])
	assert.EqualValues(t, 2, freqs['B'])
	assert.EqualValues(t, 1, freqs['C'])
	assert.Equal(t, 3, freqs.Len())
	assert.EqualValues(t, 6, freqs.Total())
	assert.Equal(t, []Symbol{'A', 'B', 'C'}, freqs.Symbols())

	empty := CountFrequencies(nil)
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Symbols())
}

func TestBuildTree_Empty(t *testing.T) {
	var freqs FrequencyTable
	tree, err := BuildTree(&freqs)
	assert.Nil(t, tree)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	var freqs FrequencyTable
	freqs[9] = 17

	tree, err := BuildTree(&freqs)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 1, tree.Leaves())
	assert.EqualValues(t, 17, tree.Weight())
	assert.EqualValues(t, 0, tree.WeightedPathLength())

	depth, found := tree.Depth(9)
	assert.True(t, found)
	assert.Equal(t, 0, depth)
}

func TestBuildTree_Example(t *testing.T) {
	freqs := CountFrequencies([]byte("AAABBC"))
	tree, err := BuildTree(&freqs)
	require.NoError(t, err)

	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, 3, tree.Leaves())
	assert.EqualValues(t, 6, tree.Weight())
	assert.EqualValues(t, 3*1+2*2+1*2, tree.WeightedPathLength())

	expectDepths := map[Symbol]int{'A': 1, 'B': 2, 'C': 2}
	for symbol, expect := range expectDepths {
		depth, found := tree.Depth(symbol)
		assert.True(t, found, "symbol %q", symbol)
		assert.Equal(t, expect, depth, "symbol %q", symbol)
	}

	_, found := tree.Depth('D')
	assert.False(t, found)
}

func TestBuildTree_Shape(t *testing.T) {
	for name, data := range testInputs() {
		t.Run(name, func(t *testing.T) {
			freqs := CountFrequencies(data)
			tree, err := BuildTree(&freqs)
			require.NoError(t, err)

			n := freqs.Len()
			assert.Equal(t, n, tree.Leaves())
			assert.Equal(t, 2*n-1, tree.Len())
			assert.Equal(t, freqs.Total(), tree.Weight())

			// The weighted path length is also the sum of the weights of
			// all internal nodes.
			var internal uint64
			for _, nd := range tree.nodes {
				if !nd.isLeaf() {
					internal += nd.freq
					assert.Equal(t, tree.nodes[nd.left].freq+tree.nodes[nd.right].freq, nd.freq)
				}
			}
			assert.Equal(t, internal, tree.WeightedPathLength())
		})
	}
}

func TestBuildTree_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		var freqs FrequencyTable
		numSymbols := 2 + rng.Intn(5)
		weights := make([]uint64, 0, numSymbols)
		for i := 0; i < numSymbols; i++ {
			w := uint64(1 + rng.Intn(20))
			freqs[rng.Intn(NumSymbols)] += w
		}
		for _, freq := range freqs {
			if freq != 0 {
				weights = append(weights, freq)
			}
		}
		if len(weights) < 2 {
			continue
		}

		tree, err := BuildTree(&freqs)
		require.NoError(t, err)

		best := bruteForceWPL(weights)
		if got := tree.WeightedPathLength(); got != best {
			t.Errorf("weights %v: weighted path length %d, optimum %d", weights, got, best)
		}
	}
}

// bruteForceWPL returns the minimum weighted path length over every full
// binary tree with the given leaf weights.  Every such tree arises from some
// sequence of pairwise merges, and its weighted path length is the sum of the
// merged weights.
func bruteForceWPL(weights []uint64) uint64 {
	if len(weights) < 2 {
		return 0
	}
	best := ^uint64(0)
	for i := 0; i < len(weights); i++ {
		for j := i + 1; j < len(weights); j++ {
			merged := weights[i] + weights[j]
			rest := make([]uint64, 0, len(weights)-1)
			for k, w := range weights {
				if k != i && k != j {
					rest = append(rest, w)
				}
			}
			rest = append(rest, merged)
			if cost := merged + bruteForceWPL(rest); cost < best {
				best = cost
			}
		}
	}
	return best
}
