// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriterReaderFIFO(t *testing.T) {
	w := NewWriter()
	w.WriteBit(1)
	w.WriteBit(0)
	w.WriteByte(0xA5)
	w.WriteBits(0x3, 3) // 011
	w.PadToByte()

	r := NewReader(w.Bytes())
	if got := r.ReadBit(); got != 1 {
		t.Fatalf("bit 0: got %d, want 1", got)
	}
	if got := r.ReadBit(); got != 0 {
		t.Fatalf("bit 1: got %d, want 0", got)
	}
	if got := r.ReadByte(); got != 0xA5 {
		t.Fatalf("byte: got %#x, want 0xA5", got)
	}
	if got := r.ReadBits(3); got != 0x3 {
		t.Fatalf("bits: got %#x, want 0x3", got)
	}
}

func TestPadToByteIdempotent(t *testing.T) {
	w := NewWriter()
	w.WriteBit(1)
	w.PadToByte()
	n := len(w.Bytes())
	w.PadToByte()
	if len(w.Bytes()) != n {
		t.Fatalf("second PadToByte changed length: %d -> %d", n, len(w.Bytes()))
	}
}

func TestUint64BERoundTrip(t *testing.T) {
	vals := []uint64{0, 1, 0xFFFFFFFFFFFFFFFF, 0x0102030405060708}
	w := NewWriter()
	for _, v := range vals {
		w.WriteUint64BE(v)
	}
	w.PadToByte()

	r := NewReader(w.Bytes())
	var got []uint64
	for range vals {
		got = append(got, r.ReadUint64BE())
	}
	if diff := cmp.Diff(vals, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPastEndPanics(t *testing.T) {
	r := NewReader(nil)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading past end of empty buffer")
		}
	}()
	r.ReadBit()
}

func TestReadBitOrZeroPastEnd(t *testing.T) {
	r := NewReader([]byte{0xFF})
	for i := 0; i < 8; i++ {
		r.ReadBitOrZero()
	}
	if got := r.ReadBitOrZero(); got != 0 {
		t.Fatalf("past end: got %d, want 0", got)
	}
}
