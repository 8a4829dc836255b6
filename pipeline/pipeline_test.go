// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package pipeline

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeVectors(t *testing.T) {
	vectors := []string{"", "A", "Hello, world!", "mississippi", "aaaaaaaaaaaaaaaaaaaa"}
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

func TestRoundTripMultiChunk64KiB(t *testing.T) {
	buf := make([]byte, 64*1024)
	x := uint32(0x34E58A2A)
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
		t.Fatal("round trip mismatch on random 64 KiB buffer")
	}
}

func TestRoundTripHighlyRepetitive(t *testing.T) {
	buf := bytes.Repeat([]byte("abcabcabcabc"), 10000)
	enc := Encode(buf)
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(dec, buf) {
		t.Fatal("round trip mismatch on highly repetitive buffer")
	}
}
