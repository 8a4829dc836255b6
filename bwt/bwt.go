// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler Transform and its inverse
// over byte blocks, plus the chunked container that frames a whole buffer
// as a sequence of independently transformed blocks (see container.go).
//
// The forward transform sorts rotation offsets by direct byte comparison
// rather than building a suffix array; the retrieved reference suffix-array
// implementation (dsnet/compress's internal/sais) was an incomplete
// fragment (its byte-alphabet entry point is undefined), so ctxzip follows
// the rotation-comparison technique spec.md §4.2 explicitly sanctions and
// that original_source/src/bwt.rs itself uses.
package bwt

import (
	"bytes"
	"sort"

	"github.com/gowheel/ctxzip/internal/xerr"
)

// Forward computes the Burrows-Wheeler Transform of input. It returns the
// last column L and the primary index I: the rank, in the lexicographically
// sorted list of rotations, of the rotation whose offset is 0.
//
// Forward does not mutate input.
func Forward(input []byte) (last []byte, index int) {
	n := len(input)
	if n == 0 {
		return nil, 0
	}

	// Doubling the buffer lets every rotation be read as a contiguous
	// n-byte slice without actually materializing n copies.
	doubled := make([]byte, 2*n)
	copy(doubled, input)
	copy(doubled[n:], input)

	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i
	}
	sort.Slice(offsets, func(a, b int) bool {
		oa, ob := offsets[a], offsets[b]
		return bytes.Compare(doubled[oa:oa+n], doubled[ob:ob+n]) < 0
	})

	last = make([]byte, n)
	for rank, off := range offsets {
		last[rank] = doubled[off+n-1]
		if off == 0 {
			index = rank
		}
	}
	return last, index
}

// Inverse reconstructs the original block from its last column and primary
// index, using the standard LF-mapping construction: count byte
// occurrences, compute starting positions, then walk the permutation.
func Inverse(last []byte, index int) ([]byte, error) {
	n := len(last)
	if n == 0 {
		return nil, nil
	}
	if index < 0 || index >= n {
		return nil, xerr.Malformed("bwt: primary index %d out of range [0,%d)", index, n)
	}

	var count [256]int
	for _, b := range last {
		count[b]++
	}
	var sum int
	for i, c := range count {
		sum += c
		count[i] = sum - c
	}

	next := make([]int, n)
	for i, b := range last {
		next[count[b]] = i
		count[b]++
	}

	first := append([]byte(nil), last...)
	sort.Slice(first, func(a, b int) bool { return first[a] < first[b] })

	out := make([]byte, n)
	cur := index
	for i := 0; i < n; i++ {
		out[i] = first[cur]
		cur = next[cur]
	}
	return out, nil
}
