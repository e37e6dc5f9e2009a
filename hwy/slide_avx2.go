//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
)

// This file provides AVX2 implementations of the Vec256 slides on archsimd
// vector types. The per-byte-count handlers live in zslide_avx2.go:
//
//	half          VPERM2I128 (Select128FromPair)
//	within half   VPERM2I128 then VPALIGNR per block (ConcatShiftBytesRight)
//	across half   VPERM2I128 then PSLLDQ/PSRLDQ, i.e. VPALIGNR against zero
//
// Results are bit-identical to the portable handlers.

func toUint8x32(r register) archsimd.Uint8x32 {
	return archsimd.LoadUint8x32Slice(r.bytes())
}

func fromUint8x32(v archsimd.Uint8x32) (r register) {
	v.StoreSlice(r.bytes())
	return r
}

// SlideUpBytes_AVX2_Uint8x32 shifts v toward higher byte indices by n bytes,
// zero-filling the low bytes. n >= 32 gives zero. Panics if n is negative.
func SlideUpBytes_AVX2_Uint8x32(v archsimd.Uint8x32, n int) archsimd.Uint8x32 {
	return slideUpTable_AVX2[checkedBytes(n, 1, "bytes")](v)
}

// SlideDownBytes_AVX2_Uint8x32 shifts v toward lower byte indices by n bytes,
// zero-filling the high bytes. n >= 32 gives zero. Panics if n is negative.
func SlideDownBytes_AVX2_Uint8x32(v archsimd.Uint8x32, n int) archsimd.Uint8x32 {
	return slideDownTable_AVX2[checkedBytes(n, 1, "bytes")](v)
}

// installAVX2Slides replaces the active slide tables with the AVX2 handlers.
// Each entry is bound to its byte count's handler here, so a call does not
// classify the amount again.
func installAVX2Slides() {
	for n := range VecBytes + 1 {
		up, down := slideUpTable_AVX2[n], slideDownTable_AVX2[n]
		slideUpImpl[n] = func(r register) register {
			return fromUint8x32(up(toUint8x32(r)))
		}
		slideDownImpl[n] = func(r register) register {
			return fromUint8x32(down(toUint8x32(r)))
		}
	}
}
