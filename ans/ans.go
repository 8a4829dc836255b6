// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ans implements a static-table range Asymmetric Numeral Systems
// (rANS) coder, grounded on original_source/src/rans.rs: frequencies are
// counted once over the whole message, Laplace-smoothed, then the message
// is encoded back to front so that decoding (front to back) needs no
// separate reversal pass.
package ans

import (
	"encoding/binary"
	"sort"

	"github.com/gowheel/ctxzip/internal/xerr"
)

// ransL is the renormalization lower bound (RANS_BYTE_L in the reference).
const ransL = uint32(1) << 23

const freqTableBytes = 256 * 4
const trailerBytes = 4 + 4 // final state + length

// Encode writes: 256 little-endian u32 frequencies, the coded byte stream
// (symbols processed last to first), the final state (u32 LE), and the
// original length (u32 LE). An empty input encodes to an empty buffer.
func Encode(input []byte) []byte {
	if len(input) == 0 {
		return nil
	}

	var freq [256]uint32
	for _, b := range input {
		freq[b]++
	}
	for i := range freq {
		freq[i]++ // Laplace smoothing: every symbol stays codable.
	}

	var cum [257]uint32
	var total uint32
	for i := 0; i < 256; i++ {
		cum[i] = total
		total += freq[i]
	}
	cum[256] = total

	var coded []byte
	state := ransL
	for i := len(input) - 1; i >= 0; i-- {
		sym := input[i]
		f := freq[sym]
		// Written as (L>>8)<<8 rather than the equivalent L (since L is
		// already a multiple of 256) to keep the form spec.md §9 calls out:
		// it avoids overflow on narrower arithmetic when freq grows large.
		for state >= ((ransL>>8)<<8)*f {
			coded = append(coded, byte(state))
			state >>= 8
		}
		state = (state/f)<<8 + (state % f) + cum[sym]
	}

	out := make([]byte, 0, freqTableBytes+len(coded)+8)
	var tmp [4]byte
	for i := 0; i < 256; i++ {
		binary.LittleEndian.PutUint32(tmp[:], freq[i])
		out = append(out, tmp[:]...)
	}
	out = append(out, coded...)
	binary.LittleEndian.PutUint32(tmp[:], state)
	out = append(out, tmp[:]...)
	binary.LittleEndian.PutUint32(tmp[:], uint32(len(input)))
	out = append(out, tmp[:]...)
	return out
}

// Decode reverses Encode.
func Decode(buf []byte) (out []byte, err error) {
	defer xerr.Recover(&err)

	if len(buf) == 0 {
		return nil, nil
	}
	if len(buf) < freqTableBytes+trailerBytes {
		return nil, xerr.Malformed("ans: input too short (%d bytes)", len(buf))
	}

	n := len(buf)
	length := binary.LittleEndian.Uint32(buf[n-4:])
	if length == 0 {
		return nil, nil
	}
	state := binary.LittleEndian.Uint32(buf[n-8 : n-4])

	var freq [256]uint32
	for i := 0; i < 256; i++ {
		freq[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}
	var cum [257]uint32
	var total uint32
	for i := 0; i < 256; i++ {
		cum[i] = total
		total += freq[i]
	}
	cum[256] = total

	coded := buf[freqTableBytes : n-trailerBytes]
	pos := len(coded)
	pullByte := func() (byte, bool) {
		if pos == 0 {
			return 0, false
		}
		pos--
		return coded[pos], true
	}

	out = make([]byte, length)
	for i := uint32(0); i < length; i++ {
		for state < ransL {
			b, ok := pullByte()
			if !ok {
				xerr.Throwf("ans: unexpected end of coded stream during renormalization")
			}
			state = state<<8 | uint32(b)
		}
		cumVal := state % total
		idx := sort.Search(256, func(i int) bool { return cum[i+1] > cumVal })
		f := freq[idx]
		start := cum[idx]
		state = f*(state/total) + cumVal - start
		out[i] = byte(idx)
	}
	return out, nil
}
