// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"github.com/gowheel/ctxzip/bitio"
	"github.com/gowheel/ctxzip/internal/xerr"
)

// ChunkSize is the fixed block size the chunked container splits input
// into before transforming each block independently. spec.md §4.7
// recommends 32 KiB for test tractability.
const ChunkSize = 32 * 1024

// Encode applies the BWT to input in ChunkSize-byte chunks and frames the
// result as:
//
//	u64 BE chunk_count
//	for each chunk:
//	  u64 BE primary_index
//	  repeated (u8 run_len, u8 byte) pairs, run_len stored literally and
//	  capped at 255; a new pair starts on a byte change or at the cap.
//
// This is the reference RLE convention spec.md §4.7 calls out explicitly.
func Encode(input []byte) []byte {
	w := bitio.NewWriter()

	chunkCount := (len(input) + ChunkSize - 1) / ChunkSize
	if len(input) == 0 {
		chunkCount = 0
	}
	w.WriteUint64BE(uint64(chunkCount))

	for off := 0; off < len(input); off += ChunkSize {
		end := off + ChunkSize
		if end > len(input) {
			end = len(input)
		}
		chunk := append([]byte(nil), input[off:end]...)
		last, index := Forward(chunk)
		w.WriteUint64BE(uint64(index))
		encodeRuns(w, last)
	}

	return w.Bytes()
}

// encodeRuns writes last as (run_len, byte) pairs. run_len is stored
// literally in [1,255]; a run of length 256 or more is split into
// consecutive 255-byte pairs followed by the remainder.
func encodeRuns(w *bitio.Writer, last []byte) {
	i := 0
	for i < len(last) {
		b := last[i]
		j := i + 1
		for j < len(last) && last[j] == b && j-i < 255 {
			j++
		}
		w.WriteByte(byte(j - i))
		w.WriteByte(b)
		i = j
	}
}

// Decode reverses Encode.
func Decode(buf []byte) (out []byte, err error) {
	defer xerr.Recover(&err)

	r := bitio.NewReader(buf)
	chunkCount := r.ReadUint64BE()

	for c := uint64(0); c < chunkCount; c++ {
		index := int(r.ReadUint64BE())
		isLast := c == chunkCount-1
		chunk := decodeRuns(r, ChunkSize, isLast)
		orig, derr := Inverse(chunk, index)
		if derr != nil {
			return nil, derr
		}
		out = append(out, orig...)
	}
	return out, nil
}

// decodeRuns expands (run_len, byte) pairs from r until it has produced
// limit bytes. Every chunk but the last must decode to exactly limit bytes;
// running out of stream early is malformed input. The last chunk is the end
// of the whole container, so it may also be shorter than limit: it stops
// early as soon as r has no bits left.
func decodeRuns(r *bitio.Reader, limit int, isLast bool) []byte {
	var out []byte
	for len(out) < limit {
		if isLast && !r.Remaining() {
			break
		}
		runLen := int(r.ReadByte())
		b := r.ReadByte()
		if runLen == 0 {
			xerr.Throwf("bwt container: zero-length run")
		}
		for i := 0; i < runLen && len(out) < limit; i++ {
			out = append(out, b)
		}
	}
	return out
}
