// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mtf implements the Move-to-Front transform over the full byte
// alphabet. It follows the table-shifting technique of dsnet/compress's
// bzip2 moveToFront codec (bzip2/mtf_rle2.go), but keeps MTF separate from
// run-length encoding: spec.md treats them as independent stages.
package mtf

// Encode replaces each byte of input with its current rank in a symbol
// table initialized to 0..255, then moves that byte to the front of the
// table.
func Encode(input []byte) []byte {
	var dict [256]byte
	for i := range dict {
		dict[i] = byte(i)
	}

	out := make([]byte, len(input))
	for i, val := range input {
		var idx uint8
		for di, dv := range dict {
			if dv == val {
				idx = uint8(di)
				break
			}
		}
		copy(dict[1:], dict[:idx])
		dict[0] = val
		out[i] = idx
	}
	return out
}

// Decode reverses Encode: each input byte is a rank into the symbol table,
// which is updated with the same move-to-front rule as Encode.
func Decode(input []byte) []byte {
	var dict [256]byte
	for i := range dict {
		dict[i] = byte(i)
	}

	out := make([]byte, len(input))
	for i, idx := range input {
		val := dict[idx]
		copy(dict[1:], dict[:idx])
		dict[0] = val
		out[i] = val
	}
	return out
}
