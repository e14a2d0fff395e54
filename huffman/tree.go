package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

const noChild = int32(-1)

// Tree is a Huffman prefix tree.  Nodes live in a flat arena and refer to
// their children by index; the root is the last node produced by the merge
// loop, or the only leaf when the input has a single distinct symbol.
type Tree struct {
	nodes []node
	root  int32
}

type node struct {
	freq   uint64
	left   int32
	right  int32
	symbol Symbol
}

func (n node) isLeaf() bool {
	return n.left == noChild
}

// BuildTree constructs a Huffman tree of minimal weighted path length for
// the given frequencies.  It returns ErrEmptyInput if no symbol is present.
//
// Ties between equal frequencies are broken by arena index: leaves are
// created in ascending symbol order and merged nodes are appended after
// them, and the lower index is always popped first and placed on the left.
// The resulting tree is therefore a pure function of freqs.
//
func BuildTree(freqs *FrequencyTable) (*Tree, error) {
	numLeaves := freqs.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	// A strict binary tree with n leaves has exactly n-1 internal nodes.
	t := &Tree{nodes: make([]node, 0, 2*numLeaves-1)}
	for symbol, freq := range freqs {
		if freq != 0 {
			t.nodes = append(t.nodes, node{freq: freq, left: noChild, right: noChild, symbol: Symbol(symbol)})
		}
	}

	// A single symbol is its own root; there is nothing to merge.
	if numLeaves == 1 {
		t.root = 0
		return t, nil
	}

	// Step 1: build a minheap over the leaves.

	h := freqHeap{tree: t, list: make([]int32, numLeaves, 2*numLeaves-1)}
	for index := range h.list {
		h.list[index] = int32(index)
	}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.  The first node popped becomes the left child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		t.nodes = append(t.nodes, node{
			freq:  addSaturating(t.nodes[a].freq, t.nodes[b].freq),
			left:  a,
			right: b,
		})
		heap.Push(&h, int32(len(t.nodes)-1))
	}

	t.root = heap.Pop(&h).(int32)
	assert.Assertf(int(t.root) == len(t.nodes)-1, "root %d is not the last node %d", t.root, len(t.nodes)-1)
	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(t.nodes), numLeaves)
	return t, nil
}

// Len returns the total number of nodes, leaves and internal nodes alike.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of leaves, i.e. the number of distinct symbols.
func (t *Tree) Leaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the frequency of the root, i.e. the length of the input.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].freq
}

// Depth returns the depth of the leaf holding symbol.  The root has depth 0.
func (t *Tree) Depth(symbol Symbol) (depth int, found bool) {
	t.walkLeaves(func(leaf Symbol, _ uint64, path Code) {
		if leaf == symbol {
			depth, found = int(path.Size), true
		}
	})
	return
}

// WeightedPathLength returns the sum over all leaves of frequency × depth,
// the quantity minimized by BuildTree.
func (t *Tree) WeightedPathLength() uint64 {
	var sum uint64
	t.walkLeaves(func(_ Symbol, freq uint64, path Code) {
		sum = addSaturating(sum, freq*uint64(path.Size))
	})
	return sum
}

// walkLeaves visits every leaf depth-first, left before right, passing the
// path from the root as a Code: '0' for each left edge and '1' for each right
// edge.  A root that is itself a leaf is visited with the empty Code.
//
// We use stackItem.x to keep track of where we are in the tree walk:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (t *Tree) walkLeaves(fn func(symbol Symbol, freq uint64, path Code)) {
	if root := t.nodes[t.root]; root.isLeaf() {
		fn(root.symbol, root.freq, Code{})
		return
	}

	type stackItem struct {
		index int32
		path  Code
		x     byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes))))
	stack = append(stack, stackItem{index: t.root})

	processChild := func(child int32, path Code) {
		if n := t.nodes[child]; n.isLeaf() {
			fn(n.symbol, n.freq, path)
			return
		}
		stack = append(stack, stackItem{index: child, path: path})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[top.index].left, top.path.Append(0))
		case 1:
			processChild(t.nodes[top.index].right, top.path.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// type freqHeap {{{

type freqHeap struct {
	tree *Tree
	list []int32
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := h.tree.nodes[a].freq, h.tree.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
