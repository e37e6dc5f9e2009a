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

// This file provides the 128-bit block primitives the slides are built from.
// They mirror the SSE byte-shift and align instructions: immediates past the
// end give zero as on hardware. A count of n <= 0 returns the input
// unchanged.

// ShiftLeftBytes shifts b toward higher byte indices by n bytes, filling the
// vacated low bytes with zero (PSLLDQ). For n >= 16 the result is zero.
// [b0,b1,...,b15] with n=2 -> [0,0,b0,...,b13]
func ShiftLeftBytes(b Block, n int) Block {
	var r Block
	if n <= 0 {
		return b
	}
	if n >= BlockBytes {
		return r
	}
	copy(r[n:], b[:BlockBytes-n])
	return r
}

// ShiftRightBytes shifts b toward lower byte indices by n bytes, filling the
// vacated high bytes with zero (PSRLDQ). For n >= 16 the result is zero.
// [b0,b1,...,b15] with n=2 -> [b2,...,b15,0,0]
func ShiftRightBytes(b Block, n int) Block {
	var r Block
	if n <= 0 {
		return b
	}
	if n >= BlockBytes {
		return r
	}
	copy(r[:BlockBytes-n], b[n:])
	return r
}

// CombineShiftRightBytes concatenates hi:lo into 32 bytes (lo in bytes
// 0..15) and returns the 16-byte window starting at byte n (PALIGNR).
// Bytes past the end of the concatenation read as zero, so n >= 32 gives
// zero.
// hi=[h0..h15], lo=[l0..l15] with n=4 -> [l4,...,l15,h0,h1,h2,h3]
func CombineShiftRightBytes(hi, lo Block, n int) Block {
	var r Block
	if n <= 0 {
		return lo
	}
	if n >= 2*BlockBytes {
		return r
	}
	if n < BlockBytes {
		copy(r[:BlockBytes-n], lo[n:])
		copy(r[BlockBytes-n:], hi[:n])
		return r
	}
	copy(r[:2*BlockBytes-n], hi[n-BlockBytes:])
	return r
}
