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

// Package hwy provides lane-granular logical shifts over 256-bit SIMD
// registers built from two 128-bit blocks.
//
// It follows the Highway C++ library's vocabulary: a lane is one element of
// the register, a block is one 128-bit half. On AVX2 hardware there is no
// single instruction that moves bytes across the block boundary, so every
// slide is synthesized from in-block byte shifts (PSLLDQ/PSRLDQ), the
// block-concatenating window (PALIGNR) and block permutes (VPERM2I128).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-laneshift/hwy"
//
//	v := hwy.Load256([]int32{1, 2, 3, 4, 5, 6, 7, 8})
//	up := hwy.SlideUpLanes(v, 3)     // [0 0 0 1 2 3 4 5]
//	down := hwy.SlideDownLanes(v, 3) // [4 5 6 7 8 0 0 0]
//
// When the amount is known up front, resolve the case once:
//
//	s := hwy.PrepareSlideUp[int32](3)
//	for i := range vs {
//		vs[i] = s.Apply(vs[i])
//	}
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Every member has a size that evenly divides 16 bytes, so a lane never
// straddles a block boundary.
type Lanes interface {
	Floats | Integers
}

// Block is one 128-bit half of a 256-bit register, in memory order.
type Block [16]byte

// BlockBytes is the size of a Block in bytes.
const BlockBytes = 16

// VecBytes is the size of a Vec256 in bytes.
const VecBytes = 2 * BlockBytes

// register is the untyped storage shared by all Vec256 instantiations.
// Block 0 holds bytes 0..15 (lanes with the lowest indices).
type register struct {
	lo, hi Block
}

// Vec256 is a 256-bit register interpreted as NumLanes() lanes of type T.
//
// Vec256 has value semantics: operations return new vectors and never modify
// their operands, so a Vec256 can be shared freely between goroutines.
type Vec256[T Lanes] struct {
	r register
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec256[T]) NumLanes() int {
	return VecBytes / laneSize[T]()
}

// LowerHalf returns block 0, which holds the lanes with the lowest indices.
func (v Vec256[T]) LowerHalf() Block {
	return v.r.lo
}

// UpperHalf returns block 1.
func (v Vec256[T]) UpperHalf() Block {
	return v.r.hi
}

// Bytes returns the vector's 32 bytes in memory order.
func (v Vec256[T]) Bytes() [VecBytes]byte {
	var b [VecBytes]byte
	copy(b[:BlockBytes], v.r.lo[:])
	copy(b[BlockBytes:], v.r.hi[:])
	return b
}
