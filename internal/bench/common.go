// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares five of ctxzip's coders (every CLI algorithm
// except bwt-huffman) against klauspost/compress's flate and ulikunitz/xz
// on compression ratio and speed, mirroring the registration style of
// dsnet/compress's internal/tool/bench/common.go.
package bench

import (
	"bytes"
	"testing"

	kflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/gowheel/ctxzip/ans"
	"github.com/gowheel/ctxzip/arithmetic"
	"github.com/gowheel/ctxzip/bwt"
	"github.com/gowheel/ctxzip/huffman"
	"github.com/gowheel/ctxzip/pipeline"
)

// Encoder compresses input into a freshly allocated buffer.
type Encoder func(input []byte) []byte

var Encoders = map[string]Encoder{
	"ctxzip/markov-huffman":      huffman.Encode,
	"ctxzip/bwt":                 bwt.Encode,
	"ctxzip/markov-arithmetic":   arithmetic.Encode,
	"ctxzip/bwt-mtf-rle-huffman": pipeline.Encode,
	"ctxzip/ans":                 ans.Encode,
	"klauspost/flate": func(input []byte) []byte {
		var buf bytes.Buffer
		w, _ := kflate.NewWriter(&buf, kflate.DefaultCompression)
		_, _ = w.Write(input)
		_ = w.Close()
		return buf.Bytes()
	},
	"ulikunitz/xz": func(input []byte) []byte {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		if err != nil {
			return nil
		}
		_, _ = w.Write(input)
		_ = w.Close()
		return buf.Bytes()
	},
}

// CompressionRatio encodes input once with enc and returns the output size
// divided by len(input), or 0 for an empty input.
func CompressionRatio(input []byte, enc Encoder) float64 {
	out := enc(input)
	if len(input) == 0 {
		return 0
	}
	return float64(len(out)) / float64(len(input))
}

// BenchmarkEncodeRate benchmarks enc's throughput on input.
func BenchmarkEncodeRate(input []byte, enc Encoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			_ = enc(input)
		}
	})
}
