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

//go:generate go run ../cmd/slidegen -output .

package hwy

import "fmt"

// This file provides whole-register lane slides for Vec256.
//
// A slide moves every lane by the same number of positions and fills the
// vacated lanes with zero. The amount is converted to bytes and one of five
// cases is chosen from the byte count alone:
//
//	n == 0          identity
//	n == 16         half: one block moves to the other, the other is zeroed
//	n >= 32         all lanes are shifted out
//	0 < n < 16      within half: in-block shift plus a PALIGNR window
//	16 < n < 32     across half: in-block shift of one block, then moved over
//
// Each byte count has a handler specialized with constant immediates in
// zslide_table.go (zslide_avx2.go for AVX2), so applying a slide is an array
// lookup and a call.

// SlideCase identifies which of the five slide handlers serves an amount.
type SlideCase uint8

const (
	// SlideIdentity is a slide by zero lanes.
	SlideIdentity SlideCase = iota

	// SlideHalf is a slide by exactly half the lanes: a whole-block move.
	SlideHalf

	// SlideAll is a slide by NumLanes() or more: the result is zero.
	SlideAll

	// SlideWithinHalf is a slide by fewer than half the lanes. Bytes cross
	// the block boundary through a PALIGNR window.
	SlideWithinHalf

	// SlideAcrossHalf is a slide by more than half but fewer than all lanes.
	// Only one source block survives and it lands in the other block.
	SlideAcrossHalf
)

// String returns a human-readable name for the slide case.
func (c SlideCase) String() string {
	switch c {
	case SlideIdentity:
		return "identity"
	case SlideHalf:
		return "half"
	case SlideAll:
		return "all"
	case SlideWithinHalf:
		return "within-half"
	case SlideAcrossHalf:
		return "across-half"
	default:
		return "unknown"
	}
}

// classifySlide picks the handler for a slide of n bytes. The checks are
// ordered: the half and all cases take priority over the range tests.
func classifySlide(n int) SlideCase {
	switch {
	case n == 0:
		return SlideIdentity
	case n == BlockBytes:
		return SlideHalf
	case n >= VecBytes:
		return SlideAll
	case n < BlockBytes:
		return SlideWithinHalf
	default:
		return SlideAcrossHalf
	}
}

// slideFunc applies a slide whose amount and case were fixed in advance.
type slideFunc func(register) register

// slideDir describes one slide direction. Up and down are mirror images:
// each case handler below is written once and instantiated per direction.
type slideDir interface {
	// shiftBlock shifts a single block by n bytes (PSLLDQ or PSRLDQ).
	shiftBlock(b Block, n int) Block

	// source returns the block that feeds the in-block shift: the block
	// whose bytes move away from the zero-filled end.
	source(r register) Block

	// windowOffset returns the PALIGNR immediate that extracts, for a
	// within-half slide of n bytes, the block straddling the boundary.
	windowOffset(n int) int

	// place assembles the within-half result from the shifted source block
	// and the boundary window.
	place(shifted, window Block) register

	// halfControl is the VPERM2I128 immediate for the half case.
	halfControl() uint8

	// acrossControl is the VPERM2I128 immediate that moves a zero-extended
	// block 0 into its final position for the across-half case.
	acrossControl() uint8
}

// dirUp slides lanes toward higher indices; low lanes become zero.
type dirUp struct{}

func (dirUp) shiftBlock(b Block, n int) Block { return ShiftLeftBytes(b, n) }
func (dirUp) source(r register) Block         { return r.lo }
func (dirUp) windowOffset(n int) int          { return BlockBytes - n }
func (dirUp) place(shifted, window Block) register {
	return register{lo: shifted, hi: window}
}

// 0x08: lower block zeroed, upper block takes a.lo.
func (dirUp) halfControl() uint8   { return 0x08 }
func (dirUp) acrossControl() uint8 { return 0x08 }

// dirDown slides lanes toward lower indices; high lanes become zero.
type dirDown struct{}

func (dirDown) shiftBlock(b Block, n int) Block { return ShiftRightBytes(b, n) }
func (dirDown) source(r register) Block         { return r.hi }
func (dirDown) windowOffset(n int) int          { return n }
func (dirDown) place(shifted, window Block) register {
	return register{lo: window, hi: shifted}
}

// 0x81: lower block takes a.hi, upper block zeroed.
// 0x80: lower block takes a.lo, upper block zeroed.
func (dirDown) halfControl() uint8   { return 0x81 }
func (dirDown) acrossControl() uint8 { return 0x80 }

func slideHalf[D slideDir](r register) register {
	var d D
	return permute2x128(r, r, d.halfControl())
}

func slideWithinHalf[D slideDir](r register, n int) register {
	var d D
	window := CombineShiftRightBytes(r.hi, r.lo, d.windowOffset(n))
	return d.place(d.shiftBlock(d.source(r), n), window)
}

func slideAcrossHalf[D slideDir](r register, n int) register {
	var d D
	s := register{lo: d.shiftBlock(d.source(r), n-BlockBytes)}
	return permute2x128(s, s, d.acrossControl())
}

// slideBytes classifies n on every call. The generated tables use the case
// handlers directly; this is the reference they are checked against.
func slideBytes[D slideDir](r register, n int) register {
	switch classifySlide(n) {
	case SlideIdentity:
		return r
	case SlideHalf:
		return slideHalf[D](r)
	case SlideAll:
		return register{}
	case SlideWithinHalf:
		return slideWithinHalf[D](r, n)
	default:
		return slideAcrossHalf[D](r, n)
	}
}

// Active slide tables, indexed by byte count 0..32. They start as the
// portable handlers and may be replaced by dispatch init.
var (
	slideUpImpl   = slideUpTable
	slideDownImpl = slideDownTable
)

// checkedBytes converts a slide amount to a byte count clamped to VecBytes.
// Negative amounts are a programming error.
func checkedBytes(amount, unit int, what string) int {
	if amount < 0 {
		panic(fmt.Sprintf("hwy: negative slide amount %d %s", amount, what))
	}
	if amount >= VecBytes/unit {
		return VecBytes
	}
	return amount * unit
}

func laneBytes[T Lanes](offs int) int {
	return checkedBytes(offs, laneSize[T](), "lanes")
}

// SlideUpLanes shifts all lanes up (toward higher indices) by offs.
// Lower lanes are filled with zeros, upper lanes that slide out are discarded.
// Amounts of NumLanes() or more return zero. Panics if offs is negative.
// [1,2,3,4,5,6,7,8] with offs=3 -> [0,0,0,1,2,3,4,5]
func SlideUpLanes[T Lanes](v Vec256[T], offs int) Vec256[T] {
	return Vec256[T]{r: slideUpImpl[laneBytes[T](offs)](v.r)}
}

// SlideDownLanes shifts all lanes down (toward lower indices) by offs.
// Upper lanes are filled with zeros, lower lanes that slide out are discarded.
// Amounts of NumLanes() or more return zero. Panics if offs is negative.
// [1,2,3,4,5,6,7,8] with offs=3 -> [4,5,6,7,8,0,0,0]
func SlideDownLanes[T Lanes](v Vec256[T], offs int) Vec256[T] {
	return Vec256[T]{r: slideDownImpl[laneBytes[T](offs)](v.r)}
}

// Slide1Up shifts all lanes up by 1, filling the first lane with zero.
// [1,2,3,4,5,6,7,8] -> [0,1,2,3,4,5,6,7]
func Slide1Up[T Lanes](v Vec256[T]) Vec256[T] {
	return SlideUpLanes(v, 1)
}

// Slide1Down shifts all lanes down by 1, filling the last lane with zero.
// [1,2,3,4,5,6,7,8] -> [2,3,4,5,6,7,8,0]
func Slide1Down[T Lanes](v Vec256[T]) Vec256[T] {
	return SlideDownLanes(v, 1)
}

// SlideUpBytes shifts the whole register toward higher byte indices by n
// bytes. n need not be a multiple of the lane size. Panics if n is negative.
func SlideUpBytes[T Lanes](v Vec256[T], n int) Vec256[T] {
	return Vec256[T]{r: slideUpImpl[checkedBytes(n, 1, "bytes")](v.r)}
}

// SlideDownBytes shifts the whole register toward lower byte indices by n
// bytes. n need not be a multiple of the lane size. Panics if n is negative.
func SlideDownBytes[T Lanes](v Vec256[T], n int) Vec256[T] {
	return Vec256[T]{r: slideDownImpl[checkedBytes(n, 1, "bytes")](v.r)}
}

// Slide is a lane slide whose amount and handler are resolved once.
// The zero value is the identity slide.
type Slide[T Lanes] struct {
	fn   slideFunc
	n    int
	kind SlideCase
}

// PrepareSlideUp resolves a SlideUpLanes by offs lanes.
// Panics if offs is negative.
func PrepareSlideUp[T Lanes](offs int) Slide[T] {
	n := laneBytes[T](offs)
	return Slide[T]{fn: slideUpImpl[n], n: n, kind: classifySlide(n)}
}

// PrepareSlideDown resolves a SlideDownLanes by offs lanes.
// Panics if offs is negative.
func PrepareSlideDown[T Lanes](offs int) Slide[T] {
	n := laneBytes[T](offs)
	return Slide[T]{fn: slideDownImpl[n], n: n, kind: classifySlide(n)}
}

// Apply slides v. It performs no classification.
func (s Slide[T]) Apply(v Vec256[T]) Vec256[T] {
	if s.fn == nil {
		return v
	}
	return Vec256[T]{r: s.fn(v.r)}
}

// Case reports which handler serves this slide.
func (s Slide[T]) Case() SlideCase {
	return s.kind
}

// Bytes returns the slide amount in bytes, clamped to 32.
func (s Slide[T]) Bytes() int {
	return s.n
}
