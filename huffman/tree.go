// Package huffman implements canonical Huffman coding over an arbitrary
// integer alphabet: tree construction from symbol frequencies, canonical
// code-length assignment, and symbol decoding from a bit stream (spec
// component E). It also exposes a standalone static-Huffman byte codec;
// the DEFLATE fixed and dynamic table machinery in package deflate is
// built on top of BuildTree and Canonical directly.
package huffman

import (
	"github.com/flatebench/codec/internal/cerr"
	"github.com/flatebench/codec/internal/heap"
)

// Node is a Huffman tree node. Leaves carry Symbol; internal nodes are
// synthetic and only carry the combined frequency of their children.
type Node struct {
	Symbol      int
	Freq        int
	Left, Right *Node
}

func (n *Node) leaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds a Huffman tree from per-symbol frequencies. Symbols
// with freq[s] == 0 are absent from the alphabet and never appear in the
// tree. Returns nil if no symbol has a nonzero frequency.
//
// If exactly one symbol has a nonzero frequency, the returned tree wraps
// that leaf in a synthetic parent so it still gets a 1-bit code: a
// correct encoder normally guarantees two distinct symbols are always
// present (DEFLATE does this by reserving the end-of-block symbol), but
// this package doesn't assume its caller does.
func BuildTree(freq []int) *Node {
	h := heap.New(2*len(freq), func(a, b *Node) bool {
		if a.Freq != b.Freq {
			return a.Freq < b.Freq
		}
		return a.Symbol < b.Symbol
	})

	count := 0
	for sym, f := range freq {
		if f > 0 {
			h.Insert(&Node{Symbol: sym, Freq: f})
			count++
		}
	}

	switch count {
	case 0:
		return nil
	case 1:
		leaf := h.ExtractMin()
		return &Node{Freq: leaf.Freq, Left: leaf}
	}

	for h.Len() > 1 {
		a, b := h.ExtractMin(), h.ExtractMin()
		h.Insert(&Node{Freq: a.Freq + b.Freq, Left: a, Right: b})
	}
	return h.ExtractMin()
}

// CodeLengths walks the tree depth-first and returns each leaf's depth as
// its code length, indexed by symbol, in a slice sized alphabetSize.
func CodeLengths(root *Node, alphabetSize int) []int {
	lengths := make([]int, alphabetSize)
	if root == nil {
		return lengths
	}

	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		if n.leaf() {
			lengths[n.Symbol] = depth
			return
		}
		if n.Left != nil {
			walk(n.Left, depth+1)
		}
		if n.Right != nil {
			walk(n.Right, depth+1)
		}
	}
	walk(root, 0)
	return lengths
}

// ErrInvalidLengths is the same sentinel as cerr.ErrCorrupt. NewTable and
// NewTableFromCodes do not check that code lengths form a valid Huffman
// table, so an over-subscribed length vector is accepted as given.
var ErrInvalidLengths = cerr.ErrCorrupt
