// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"testing"
)

func TestContainerRoundTripSmall(t *testing.T) {
	vectors := []string{"", "A", "Hello, world!", "mississippi"}
	for _, input := range vectors {
		enc := Encode([]byte(input))
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("%q: Decode error: %v", input, err)
		}
		if !bytes.Equal(dec, []byte(input)) {
			t.Errorf("%q: round trip got %q", input, dec)
		}
	}
}

func TestContainerRoundTripMultiChunk(t *testing.T) {
	// Three and a half chunks, so the last chunk is short and exercises the
	// isLast early-stop path in decodeRuns.
	buf := make([]byte, ChunkSize*3+ChunkSize/2)
	x := uint32(0x9E3779B9)
	for i := range buf {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		buf[i] = byte(x)
	}
	enc := Encode(buf)
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(dec, buf) {
		t.Fatal("round trip mismatch across chunk boundary")
	}
}

func TestContainerRoundTripExactChunk(t *testing.T) {
	buf := bytes.Repeat([]byte{'z'}, ChunkSize)
	enc := Encode(buf)
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(dec, buf) {
		t.Fatal("round trip mismatch on exact-chunk-size input")
	}
}

func TestContainerTruncatedStreamIsMalformed(t *testing.T) {
	// Two chunks, so chunk 0 is not the last chunk and must decode to
	// exactly ChunkSize bytes; truncating deep inside its run data must
	// surface as a malformed-input error rather than a silent short read.
	buf := make([]byte, ChunkSize*2)
	for i := range buf {
		buf[i] = byte(i)
	}
	enc := Encode(buf)
	_, err := Decode(enc[:24])
	if err == nil {
		t.Fatal("expected error decoding a truncated multi-chunk stream")
	}
}
