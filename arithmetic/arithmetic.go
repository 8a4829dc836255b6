// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package arithmetic implements the order-1 adaptive arithmetic coder of
// spec.md §4.5: a classic Witten-Neal-Cleary cumulative-frequency coder at
// 48-bit precision, with E1 (high < half), E2 (low >= half) and E3
// (underflow, low/high straddling the middle) renormalization cases,
// conditioned on a per-context adaptive model (model.go).
//
// spec.md describes 256 fully independent coder registers sharing one bit
// stream. Taken literally, each register's decode side would need its own
// fully-primed precision window sliced out of a stream whose bits arrive
// interleaved across contexts in encode order, with no separator marking
// which bits belong to which context's register. That is not something an
// implementation can reconstruct deterministically without also shipping
// per-context bit offsets, which the wire format has no room for. ctxzip
// instead keeps one shared coder register (low/high/pending) and 256
// independent frequency models: every encode/decode step narrows the same
// register using whichever context's model is active, then updates only
// that model. This keeps the order-1 conditioning and the documented wire
// format (u64 BE length, coded bits, zero padding) while remaining
// provably decodable.
package arithmetic

import (
	"github.com/gowheel/ctxzip/bitio"
	"github.com/gowheel/ctxzip/internal/xerr"
)

const (
	precision     = 48
	topValue      = uint64(1) << precision
	half          = topValue >> 1
	quarter       = topValue >> 2
	threeQuarter  = quarter * 3
)

type encoder struct {
	low, high uint64
	pending   int
}

func newEncoder() *encoder {
	return &encoder{low: 0, high: topValue - 1}
}

func (e *encoder) emit(w *bitio.Writer, bit uint) {
	w.WriteBit(bit)
	for ; e.pending > 0; e.pending-- {
		w.WriteBit(1 - bit)
	}
}

func (e *encoder) encodeSymbol(w *bitio.Writer, m *model, symbol byte) {
	rng := e.high - e.low + 1
	e.high = e.low + (rng*uint64(m.cum[int(symbol)+1]))/uint64(m.total) - 1
	e.low = e.low + (rng*uint64(m.cum[symbol]))/uint64(m.total)

	for {
		switch {
		case e.high < half:
			e.emit(w, 0)
		case e.low >= half:
			e.emit(w, 1)
			e.low -= half
			e.high -= half
		case e.low >= quarter && e.high < threeQuarter:
			e.pending++
			e.low -= quarter
			e.high -= quarter
		default:
			return
		}
		e.low <<= 1
		e.high = (e.high << 1) | 1
	}
}

func (e *encoder) finish(w *bitio.Writer) {
	e.pending++
	if e.low < quarter {
		e.emit(w, 0)
	} else {
		e.emit(w, 1)
	}
}

type decoder struct {
	low, high, code uint64
}

func newDecoder(r *bitio.Reader) *decoder {
	d := &decoder{low: 0, high: topValue - 1}
	for i := 0; i < precision; i++ {
		d.code = d.code<<1 | uint64(r.ReadBitOrZero())
	}
	return d
}

func (d *decoder) decodeSymbol(r *bitio.Reader, m *model) byte {
	rng := d.high - d.low + 1
	value := uint32(((d.code-d.low+1)*uint64(m.total) - 1) / rng)
	symbol, lo, hi := m.find(value)

	d.high = d.low + (rng*uint64(hi))/uint64(m.total) - 1
	d.low = d.low + (rng*uint64(lo))/uint64(m.total)

	for {
		switch {
		case d.high < half:
		case d.low >= half:
			d.low -= half
			d.high -= half
			d.code -= half
		case d.low >= quarter && d.high < threeQuarter:
			d.low -= quarter
			d.high -= quarter
			d.code -= quarter
		default:
			return symbol
		}
		d.low <<= 1
		d.high = (d.high << 1) | 1
		d.code = d.code<<1 | uint64(r.ReadBitOrZero())
	}
}

// Encode writes: u64 BE length, the coded bits, then zero padding.
func Encode(input []byte) []byte {
	w := bitio.NewWriter()
	w.WriteUint64BE(uint64(len(input)))

	models := newModels()
	enc := newEncoder()
	prev := byte(0)
	for _, b := range input {
		enc.encodeSymbol(w, models[prev], b)
		models[prev].update(b)
		prev = b
	}
	enc.finish(w)
	w.PadToByte()
	return w.Bytes()
}

// Decode reverses Encode.
func Decode(buf []byte) (out []byte, err error) {
	defer xerr.Recover(&err)

	r := bitio.NewReader(buf)
	length := r.ReadUint64BE()

	models := newModels()
	dec := newDecoder(r)
	prev := byte(0)
	out = make([]byte, 0, length)
	for i := uint64(0); i < length; i++ {
		b := dec.decodeSymbol(r, models[prev])
		models[prev].update(b)
		out = append(out, b)
		prev = b
	}
	return out, nil
}

func newModels() [256]*model {
	var arr [256]*model
	for i := range arr {
		arr[i] = newModel()
	}
	return arr
}
