// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package arithmetic

import "sort"

// maxTotal bounds a model's total frequency so that range*total stays
// inside 64-bit arithmetic headroom at the coder's 48-bit precision (see
// arithmetic.go). Real-world adaptive coders rescale for the same reason;
// without it a long run through one context would eventually overflow the
// interval narrowing multiplication.
const maxTotal = 1 << 14

// model is the adaptive per-context frequency table described in spec.md
// §4.5: 256 symbols, uniform positive initial counts so every byte is
// codable the first time its context is used.
type model struct {
	freq  [256]uint32
	cum   [257]uint32
	total uint32
}

func newModel() *model {
	m := &model{}
	for i := range m.freq {
		m.freq[i] = 1
	}
	m.rebuild()
	return m
}

func (m *model) rebuild() {
	var sum uint32
	for i, f := range m.freq {
		m.cum[i] = sum
		sum += f
	}
	m.cum[256] = sum
	m.total = sum
}

// update increments symbol's count, then halves every count (rounding up,
// so no count drops below 1) if the incremented total exceeds maxTotal.
func (m *model) update(symbol byte) {
	m.freq[symbol]++
	if m.total+1 > maxTotal {
		for i := range m.freq {
			m.freq[i] = (m.freq[i] + 1) / 2
		}
	}
	m.rebuild()
}

// find returns the unique symbol s with cum[s] <= value < cum[s+1], along
// with its cumulative bounds.
func (m *model) find(value uint32) (symbol byte, lo, hi uint32) {
	idx := sort.Search(256, func(i int) bool { return m.cum[i+1] > value })
	return byte(idx), m.cum[idx], m.cum[idx+1]
}
