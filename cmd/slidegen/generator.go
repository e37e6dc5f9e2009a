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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// Register geometry. These must match hwy.BlockBytes and hwy.VecBytes.
const (
	blockBytes = 16
	vecBytes   = 2 * blockBytes
)

// Direction names one slide direction and the hwy type that implements it.
type Direction struct {
	// Name is used in generated identifiers: slide<Name>Bytes<n>.
	Name string

	// DirType is the hwy slideDir type the case handlers are instantiated with.
	DirType string

	// HalfSelect is the Select128FromPair block pair (lo, hi) that moves
	// one block across against a zero vector: VPERM2I128 $0x08 going up
	// and $0x81 going down.
	HalfSelect string

	// FillsLow reports whether the slide zero-fills the low bytes.
	FillsLow bool
}

// Directions lists the slide directions in emission order.
var Directions = []Direction{
	{Name: "Up", DirType: "dirUp", HalfSelect: "2, 0", FillsLow: true},
	{Name: "Down", DirType: "dirDown", HalfSelect: "1, 2"},
}

// Generator writes the slide handler tables.
type Generator struct {
	OutputDir string
	Package   string
	FileName  string

	// AVX2FileName is the file for the archsimd handlers. Empty skips it.
	AVX2FileName string
}

// avx2BuildTag guards the archsimd handlers.
const avx2BuildTag = "amd64 && goexperiment.simd"

var formatOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

// Path returns the portable table file the generator writes.
func (g *Generator) Path() string {
	return filepath.Join(g.OutputDir, g.FileName)
}

// AVX2Path returns the AVX2 table file the generator writes.
func (g *Generator) AVX2Path() string {
	return filepath.Join(g.OutputDir, g.AVX2FileName)
}

// Run generates the tables and writes them to Path and AVX2Path.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.Path(), src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.Path(), err)
	}

	if g.AVX2FileName == "" {
		return nil
	}
	src, err = g.GenerateAVX2()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.AVX2Path(), src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.AVX2Path(), err)
	}
	return nil
}

func (g *Generator) validate(fileName string) error {
	if g.Package == "" {
		return errors.New("package name is required")
	}
	if !strings.HasSuffix(fileName, ".go") {
		return fmt.Errorf("output file %q must have a .go suffix", fileName)
	}
	return nil
}

// Generate returns the formatted source of the portable table file.
func (g *Generator) Generate() ([]byte, error) {
	if err := g.validate(g.FileName); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by slidegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)

	for _, d := range Directions {
		for n := 0; n <= vecBytes; n++ {
			fmt.Fprintf(&buf, "func %s(r register) register {\n", handlerName(d, n))
			fmt.Fprintf(&buf, "\treturn %s\n", handlerExpr(d, n))
			buf.WriteString("}\n\n")
		}
	}

	for _, d := range Directions {
		fmt.Fprintf(&buf, "// slide%sTable holds the portable slide %s handlers indexed by byte count.\n",
			d.Name, strings.ToLower(d.Name))
		fmt.Fprintf(&buf, "var slide%sTable = [VecBytes + 1]slideFunc{\n", d.Name)
		for n := 0; n <= vecBytes; n++ {
			fmt.Fprintf(&buf, "\t%s,\n", handlerName(d, n))
		}
		buf.WriteString("}\n\n")
	}

	return format(g.Path(), buf.Bytes())
}

// GenerateAVX2 returns the formatted source of the AVX2 table file. Every
// immediate is a literal, so each handler compiles to the instructions it
// names.
func (g *Generator) GenerateAVX2() ([]byte, error) {
	if err := g.validate(g.AVX2FileName); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build %s\n\n", avx2BuildTag)
	fmt.Fprintf(&buf, "// Code generated by slidegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.Package)
	fmt.Fprintf(&buf, "import \"simd/archsimd\"\n\n")

	for _, d := range Directions {
		for n := 0; n <= vecBytes; n++ {
			fmt.Fprintf(&buf, "func %s(v archsimd.Uint8x32) archsimd.Uint8x32 {\n", avx2HandlerName(d, n))
			for _, line := range avx2Body(d, n) {
				fmt.Fprintf(&buf, "\t%s\n", line)
			}
			buf.WriteString("}\n\n")
		}
	}

	for _, d := range Directions {
		fmt.Fprintf(&buf, "// slide%sTable_AVX2 holds the AVX2 slide %s handlers indexed by byte count.\n",
			d.Name, strings.ToLower(d.Name))
		fmt.Fprintf(&buf, "var slide%sTable_AVX2 = [VecBytes + 1]func(archsimd.Uint8x32) archsimd.Uint8x32{\n", d.Name)
		for n := 0; n <= vecBytes; n++ {
			fmt.Fprintf(&buf, "\t%s,\n", avx2HandlerName(d, n))
		}
		buf.WriteString("}\n\n")
	}

	return format(g.AVX2Path(), buf.Bytes())
}

// format runs gofmt over src. Imports are written explicitly, so they are
// not rewritten.
func format(path string, src []byte) ([]byte, error) {
	formatted, err := imports.Process(path, src, formatOptions)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return formatted, nil
}

func handlerName(d Direction, n int) string {
	return fmt.Sprintf("slide%sBytes%d", d.Name, n)
}

func avx2HandlerName(d Direction, n int) string {
	return handlerName(d, n) + "_AVX2"
}

// handlerExpr returns the body expression for a slide of n bytes. The case
// order matches hwy.classifySlide.
func handlerExpr(d Direction, n int) string {
	switch {
	case n == 0:
		return "r"
	case n == blockBytes:
		return fmt.Sprintf("slideHalf[%s](r)", d.DirType)
	case n >= vecBytes:
		return "register{}"
	case n < blockBytes:
		return fmt.Sprintf("slideWithinHalf[%s](r, %d)", d.DirType, n)
	default:
		return fmt.Sprintf("slideAcrossHalf[%s](r, %d)", d.DirType, n)
	}
}

// avx2Body returns the statements of the AVX2 handler for a slide of n
// bytes. ConcatShiftBytesRight is VPALIGNR on one block; against a zero
// block it is PSLLDQ or PSRLDQ.
func avx2Body(d Direction, n int) []string {
	const (
		zero32 = "archsimd.Uint8x32{}"
		zero16 = "archsimd.Uint8x16{}"
	)
	perm := fmt.Sprintf("v.Select128FromPair(%s, %s)", d.HalfSelect, zero32)

	switch {
	case n == 0:
		return []string{"return v"}
	case n == blockBytes:
		return []string{"return " + perm}
	case n >= vecBytes:
		return []string{"return " + zero32}
	case n < blockBytes:
		// Per block: VPALIGNR of v with the permuted copy t.
		high, low, imm := "t", "v", n
		if d.FillsLow {
			high, low, imm = "v", "t", blockBytes-n
		}
		return []string{
			"t := " + perm,
			fmt.Sprintf("lo := %s.GetLo().ConcatShiftBytesRight(%d, %s.GetLo())", high, imm, low),
			fmt.Sprintf("hi := %s.GetHi().ConcatShiftBytesRight(%d, %s.GetHi())", high, imm, low),
			"return v.SetLo(lo).SetHi(hi)",
		}
	default:
		// The one surviving block is moved over, then shifted in place.
		if d.FillsLow {
			return []string{
				"t := " + perm,
				fmt.Sprintf("return t.SetHi(t.GetHi().ConcatShiftBytesRight(%d, %s))", vecBytes-n, zero16),
			}
		}
		return []string{
			"t := " + perm,
			fmt.Sprintf("return t.SetLo(%s.ConcatShiftBytesRight(%d, t.GetLo()))", zero16, n-blockBytes),
		}
	}
}
