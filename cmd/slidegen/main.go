// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command slidegen generates the specialized slide handler tables for package hwy.
//
// Usage:
//
//	slidegen -output hwy
//
// Or via go:generate (see hwy/slide.go):
//
//	//go:generate go run ../cmd/slidegen -output .
//
// For every direction and every byte count 0..32 the generator emits a
// function that calls the one case handler serving that count, with the
// count as a constant argument, and an array indexed by byte count that
// holds those functions. Selecting a slide at run time is then a single
// array index.
//
// A second file, guarded by the simd experiment, holds the same tables
// built from archsimd intrinsics with literal immediates.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "hwy", "Output package name")
	fileName   = flag.String("file", "zslide_table.go", "Output file name")
	avx2File   = flag.String("avx2file", "zslide_avx2.go", "Output file name for the AVX2 handlers (empty to skip)")
)

func main() {
	flag.Parse()

	gen := &Generator{
		OutputDir:    *outputDir,
		Package:      *packageOut,
		FileName:     *fileName,
		AVX2FileName: *avx2File,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated: %s\n", gen.Path())
	if gen.AVX2FileName != "" {
		fmt.Printf("Generated: %s\n", gen.AVX2Path())
	}
}
