// Copyright 2026, The ctxzip Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ctxzip is the external driver referenced in spec.md §6: a thin
// wrapper that hands a whole input buffer to one of the six core coders
// and writes back whatever buffer comes out. Flag parsing, file I/O, and
// error reporting live here; none of it is part of the core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gowheel/ctxzip/ans"
	"github.com/gowheel/ctxzip/arithmetic"
	"github.com/gowheel/ctxzip/bwt"
	"github.com/gowheel/ctxzip/huffman"
	"github.com/gowheel/ctxzip/pipeline"
)

type codec struct {
	encode func([]byte) []byte
	decode func([]byte) ([]byte, error)
}

var codecs = map[string]codec{
	"markov-huffman": {encode: huffman.Encode, decode: huffman.Decode},
	"bwt":            {encode: bwt.Encode, decode: bwt.Decode},
	"bwt-huffman": {
		encode: func(b []byte) []byte { return huffman.Encode(bwt.Encode(b)) },
		decode: func(b []byte) ([]byte, error) {
			h, err := huffman.Decode(b)
			if err != nil {
				return nil, err
			}
			return bwt.Decode(h)
		},
	},
	"markov-arithmetic":  {encode: arithmetic.Encode, decode: arithmetic.Decode},
	"bwt-mtf-rle-huffman": {encode: pipeline.Encode, decode: pipeline.Decode},
	"ans":                 {encode: ans.Encode, decode: ans.Decode},
}

var (
	inputPath  string
	outputPath string
	algorithm  string
	compress   bool
	decompress bool
)

func main() {
	root := &cobra.Command{
		Use:           "ctxzip",
		Short:         "order-1 context-model byte compressor",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := root.Flags()
	flags.StringVar(&inputPath, "input", "", "input file path")
	flags.StringVar(&outputPath, "output", "", "output file path")
	flags.StringVar(&algorithm, "algorithm", "", "algorithm name")
	flags.BoolVar(&compress, "compress", false, "compress the input")
	flags.BoolVar(&decompress, "decompress", false, "decompress the input")
	for _, name := range []string{"input", "output", "algorithm"} {
		if err := root.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if compress == decompress {
		return fmt.Errorf("exactly one of --compress or --decompress is required")
	}

	c, ok := codecs[algorithm]
	if !ok {
		return fmt.Errorf("unsupported algorithm %q", algorithm)
	}

	input, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	var output []byte
	if compress {
		output = c.encode(input)
	} else {
		output, err = c.decode(input)
		if err != nil {
			return err
		}
	}

	return os.WriteFile(outputPath, output, 0o644)
}
