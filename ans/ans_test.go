// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ans

import (
	"bytes"
	"testing"
)

func TestEmptyInput(t *testing.T) {
	enc := Encode(nil)
	if len(enc) != 0 {
		t.Fatalf("Encode(nil): got %d bytes, want 0", len(enc))
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(dec) != 0 {
		t.Fatalf("Decode(empty): got %d bytes, want 0", len(dec))
	}
}

func TestEncodeDecodeVectors(t *testing.T) {
	vectors := []string{"A", "Hello, world!", "aaaaaaaaaaaaaaaaaaaa", "mississippi"}
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

func TestOutputNeverBelow1028BytesForNonEmpty(t *testing.T) {
	enc := Encode([]byte("A"))
	if len(enc) < 1028 {
		t.Fatalf("encoded output: got %d bytes, want >= 1028", len(enc))
	}
}

func TestDecodeTooShortIsMalformed(t *testing.T) {
	_, err := Decode(make([]byte, 100))
	if err == nil {
		t.Fatal("expected error decoding a buffer shorter than the trailer")
	}
}

func TestRoundTripRandomish(t *testing.T) {
	buf := make([]byte, 8192)
	x := uint32(0x165667B1)
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
		t.Fatal("round trip mismatch on pseudo-random buffer")
	}
}
