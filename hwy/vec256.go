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

package hwy

import "unsafe"

// This file provides construction, memory and block-level operations for
// Vec256. Lanes are stored in native byte order; every operation in this
// package moves whole lanes or whole bytes, so results do not depend on
// endianness.

// laneSize returns the size in bytes of one lane of type T.
func laneSize[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// asBytes views the first n elements of s as raw bytes.
func asBytes[T Lanes](s []T, n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), n*laneSize[T]())
}

func (r *register) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(r)), VecBytes)
}

// Zero256 returns a vector with all lanes set to zero.
func Zero256[T Lanes]() Vec256[T] {
	return Vec256[T]{}
}

// Load256 loads up to NumLanes() lanes from src. Lanes beyond len(src) are
// zero.
func Load256[T Lanes](src []T) Vec256[T] {
	var v Vec256[T]
	n := min(len(src), v.NumLanes())
	copy(v.r.bytes(), asBytes(src, n))
	return v
}

// LoadBytes256 builds a vector from 32 raw bytes in memory order.
func LoadBytes256[T Lanes](b [VecBytes]byte) Vec256[T] {
	var v Vec256[T]
	copy(v.r.lo[:], b[:BlockBytes])
	copy(v.r.hi[:], b[BlockBytes:])
	return v
}

// Iota256 returns a vector whose lane i holds start+i.
// [start, start+1, ..., start+NumLanes()-1]
func Iota256[T Lanes](start T) Vec256[T] {
	lanes := make([]T, VecBytes/laneSize[T]())
	for i := range lanes {
		lanes[i] = start + T(i)
	}
	return Load256(lanes)
}

// Store writes up to min(len(dst), NumLanes()) lanes to dst.
func (v Vec256[T]) Store(dst []T) {
	n := min(len(dst), v.NumLanes())
	copy(asBytes(dst, n), v.r.bytes())
}

// Lanes returns a copy of all lanes of v.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec256[T]) Lanes() []T {
	lanes := make([]T, v.NumLanes())
	v.Store(lanes)
	return lanes
}

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Lanes](v Vec256[T], idx int) T {
	if idx < 0 || idx >= v.NumLanes() {
		var zero T
		return zero
	}
	return v.Lanes()[idx]
}

// Combine256 builds a vector from two blocks: lo becomes block 0 and hi
// becomes block 1 (VINSERTI128 of hi into a zero-extended lo).
func Combine256[T Lanes](hi, lo Block) Vec256[T] {
	return Vec256[T]{r: register{lo: lo, hi: hi}}
}

// ZeroExtend256 places lo in block 0 and zeroes block 1.
func ZeroExtend256[T Lanes](lo Block) Vec256[T] {
	return Vec256[T]{r: register{lo: lo}}
}

// BitCast256 reinterprets the bytes of v as lanes of type U.
func BitCast256[U, T Lanes](v Vec256[T]) Vec256[U] {
	return Vec256[U]{r: v.r}
}

// selectBlock returns the block chosen by a 4-bit VPERM2I128 selector:
// bits 1:0 pick a.lo, a.hi, b.lo or b.hi and bit 3 forces zero.
func selectBlock(a, b register, sel uint8) Block {
	if sel&0x8 != 0 {
		return Block{}
	}
	switch sel & 0x3 {
	case 0:
		return a.lo
	case 1:
		return a.hi
	case 2:
		return b.lo
	default:
		return b.hi
	}
}

func permute2x128(a, b register, imm uint8) register {
	return register{
		lo: selectBlock(a, b, imm&0xf),
		hi: selectBlock(a, b, imm>>4),
	}
}

// Permute2x128 selects each result block from the four blocks of a and b
// (VPERM2I128). Bits 1:0 of imm choose the lower result block (0 = a.lo,
// 1 = a.hi, 2 = b.lo, 3 = b.hi) and bit 3 zeroes it; bits 5:4 and bit 7 do
// the same for the upper result block.
//
//	Permute2x128(v, v, 0x08) -> [zero, v.lo]
//	Permute2x128(v, v, 0x81) -> [v.hi, zero]
func Permute2x128[T Lanes](a, b Vec256[T], imm uint8) Vec256[T] {
	return Vec256[T]{r: permute2x128(a.r, b.r, imm)}
}

// SwapAdjacentBlocks swaps the two 128-bit halves.
// For int32 lanes: [a0,a1,a2,a3,a4,a5,a6,a7] -> [a4,a5,a6,a7,a0,a1,a2,a3]
func SwapAdjacentBlocks[T Lanes](v Vec256[T]) Vec256[T] {
	return Permute2x128(v, v, 0x01)
}
