// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare ctxzip's coders against reference libraries
// from the same dependency pool (klauspost/compress, ulikunitz/xz).
//
// Example usage:
//	$ go run main.go -file testdata/twain.txt
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/gowheel/ctxzip/internal/bench"
)

func main() {
	file := flag.String("file", "", "input file to compress")
	flag.Parse()

	if *file == "" {
		fmt.Println("usage: bench -file PATH")
		return
	}

	input, err := ioutil.ReadFile(*file)
	if err != nil {
		fmt.Println(err)
		return
	}

	var names []string
	for name := range bench.Encoders {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("input: %s (%d bytes)\n", *file, len(input))
	for _, name := range names {
		ratio := bench.CompressionRatio(input, bench.Encoders[name])
		result := bench.BenchmarkEncodeRate(input, bench.Encoders[name])
		fmt.Printf("%-28s ratio=%.3f  %s\n", name, ratio, result.String())
	}
}
