// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"sort"

	"github.com/gowheel/ctxzip/bitio"
)

// Node is a Huffman tree node: either a leaf carrying a byte, or an inner
// node with two children. freq is only meaningful during construction.
// Exported so the composite BWT-RLE-Huffman pipeline (package pipeline)
// can build and serialize its own pair of parallel trees without
// duplicating this machinery.
type Node struct {
	freq  uint64
	leaf  bool
	b     byte
	left  *Node
	right *Node
}

// Code is a canonical code entry: the Len least-significant bits of Word,
// written MSB-first.
type Code struct {
	Word uint64
	Len  int
}

// BuildTree constructs a Huffman tree over all 256 bytes from freq, per
// spec.md §4.4: start with 256 leaves (zero frequency allowed), then
// repeatedly merge the two lowest-frequency nodes until one remains. Ties
// are broken by insertion order: a node inserted earlier sorts first among
// equal frequencies, mirroring original_source/src/huffman.rs's
// VecDeque::binary_search_by_key/insert queue.
func BuildTree(freq [256]uint64) *Node {
	queue := make([]*Node, 0, 256)
	insert := func(n *Node) {
		idx := sort.Search(len(queue), func(i int) bool { return queue[i].freq > n.freq })
		queue = append(queue, nil)
		copy(queue[idx+1:], queue[idx:])
		queue[idx] = n
	}

	for b := 0; b < 256; b++ {
		insert(&Node{freq: freq[b], leaf: true, b: byte(b)})
	}

	for len(queue) > 1 {
		left, right := queue[0], queue[1]
		queue = queue[2:]
		insert(&Node{freq: left.freq + right.freq, left: left, right: right})
	}
	return queue[0]
}

// Codes extracts the canonical (word, len) pair for every byte by a DFS
// from the root, left=0, right=1.
func Codes(root *Node) [256]Code {
	var out [256]Code
	var walk func(n *Node, word uint64, length int)
	walk = func(n *Node, word uint64, length int) {
		if n.leaf {
			out[n.b] = Code{Word: word, Len: length}
			return
		}
		walk(n.left, word<<1, length+1)
		walk(n.right, word<<1|1, length+1)
	}
	walk(root, 0, 0)
	return out
}

// WriteTree serializes n as a prefix walk: bit 1 + 8 bits for a leaf,
// bit 0 + left + right for an inner node.
func WriteTree(w *bitio.Writer, n *Node) {
	if n.leaf {
		w.WriteBit(1)
		w.WriteByte(n.b)
		return
	}
	w.WriteBit(0)
	WriteTree(w, n.left)
	WriteTree(w, n.right)
}

// ReadTree deserializes a tree written by WriteTree.
func ReadTree(r *bitio.Reader) *Node {
	if r.ReadBit() == 1 {
		return &Node{leaf: true, b: r.ReadByte()}
	}
	left := ReadTree(r)
	right := ReadTree(r)
	return &Node{left: left, right: right}
}

// DecodeSymbol walks root bit by bit until it reaches a leaf.
func DecodeSymbol(root *Node, r *bitio.Reader) byte {
	n := root
	for !n.leaf {
		if r.ReadBit() == 1 {
			n = n.right
		} else {
			n = n.left
		}
	}
	return n.b
}
