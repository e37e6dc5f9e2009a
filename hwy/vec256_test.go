package hwy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad256Store(t *testing.T) {
	tests := []struct {
		name string
		src  []int32
		want []int32
	}{
		{"full", []int32{1, 2, 3, 4, 5, 6, 7, 8}, []int32{1, 2, 3, 4, 5, 6, 7, 8}},
		{"short", []int32{1, 2, 3}, []int32{1, 2, 3, 0, 0, 0, 0, 0}},
		{"long", []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []int32{1, 2, 3, 4, 5, 6, 7, 8}},
		{"empty", nil, []int32{0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Load256(tt.src)
			if diff := cmp.Diff(tt.want, v.Lanes()); diff != "" {
				t.Errorf("Load256(%v) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestStorePartial(t *testing.T) {
	v := Iota256[float64](1)
	dst := []float64{-1, -1}
	v.Store(dst)
	if diff := cmp.Diff([]float64{1, 2}, dst); diff != "" {
		t.Errorf("Store into short slice mismatch (-want +got):\n%s", diff)
	}

	long := make([]float64, 6)
	v.Store(long)
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 0, 0}, long); diff != "" {
		t.Errorf("Store into long slice mismatch (-want +got):\n%s", diff)
	}
}

func TestNumLanes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"int8", Vec256[int8]{}.NumLanes(), 32},
		{"uint16", Vec256[uint16]{}.NumLanes(), 16},
		{"float32", Vec256[float32]{}.NumLanes(), 8},
		{"int32", Vec256[int32]{}.NumLanes(), 8},
		{"float64", Vec256[float64]{}.NumLanes(), 4},
		{"uint64", Vec256[uint64]{}.NumLanes(), 4},
		{"tag256 int32", FixedTag256[int32]{}.MaxLanes(), 8},
		{"tag128 int32", FixedTag128[int32]{}.MaxLanes(), 4},
		{"tag256 float64", FixedTag256[float64]{}.MaxLanes(), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("lanes = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestGetLane(t *testing.T) {
	v := Load256([]float32{1, 2, 3, 4, 5, 6, 7, 8})

	tests := []struct {
		idx    int
		expect float32
	}{
		{0, 1},
		{3, 4},
		{7, 8},
		{-1, 0}, // out of bounds
		{8, 0},  // out of bounds
	}

	for _, tt := range tests {
		result := GetLane(v, tt.idx)
		if result != tt.expect {
			t.Errorf("GetLane(%d) = %v, want %v", tt.idx, result, tt.expect)
		}
	}
}

func TestHalves(t *testing.T) {
	v := Iota256[uint8](0)
	if got, want := v.LowerHalf(), seqBlock(0); got != want {
		t.Errorf("LowerHalf() = %v, want %v", got, want)
	}
	if got, want := v.UpperHalf(), seqBlock(16); got != want {
		t.Errorf("UpperHalf() = %v, want %v", got, want)
	}

	c := Combine256[uint8](v.LowerHalf(), v.UpperHalf())
	if diff := cmp.Diff(SwapAdjacentBlocks(v).Lanes(), c.Lanes()); diff != "" {
		t.Errorf("Combine256(lo, hi) differs from SwapAdjacentBlocks (-want +got):\n%s", diff)
	}

	z := ZeroExtend256[uint8](seqBlock(7))
	if z.LowerHalf() != seqBlock(7) || z.UpperHalf() != (Block{}) {
		t.Errorf("ZeroExtend256 = %v, want lower %v and zero upper", z.Lanes(), seqBlock(7))
	}
}

func TestBitCast256(t *testing.T) {
	v := Load256([]uint64{1, 2, 3, 4})
	back := BitCast256[uint64](BitCast256[uint8](v))
	if diff := cmp.Diff(v.Lanes(), back.Lanes()); diff != "" {
		t.Errorf("BitCast256 round trip mismatch (-want +got):\n%s", diff)
	}
	if v.Bytes() != BitCast256[int16](v).Bytes() {
		t.Errorf("BitCast256 changed the register bytes")
	}
}

func TestPermute2x128(t *testing.T) {
	a := Load256([]int32{1, 2, 3, 4, 5, 6, 7, 8})
	b := Load256([]int32{11, 12, 13, 14, 15, 16, 17, 18})

	tests := []struct {
		name string
		imm  uint8
		want []int32
	}{
		{"identity", 0x10, []int32{1, 2, 3, 4, 5, 6, 7, 8}},
		{"swap", 0x01, []int32{5, 6, 7, 8, 1, 2, 3, 4}},
		{"b halves", 0x32, []int32{11, 12, 13, 14, 15, 16, 17, 18}},
		{"a.lo b.hi", 0x30, []int32{1, 2, 3, 4, 15, 16, 17, 18}},
		{"zero lower, upper a.lo", 0x08, []int32{0, 0, 0, 0, 1, 2, 3, 4}},
		{"lower a.hi, zero upper", 0x81, []int32{5, 6, 7, 8, 0, 0, 0, 0}},
		{"lower a.lo, zero upper", 0x80, []int32{1, 2, 3, 4, 0, 0, 0, 0}},
		{"both zeroed", 0x88, []int32{0, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Permute2x128(a, b, tt.imm).Lanes()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Permute2x128(0x%02x) mismatch (-want +got):\n%s", tt.imm, diff)
			}
		})
	}
}

func TestSwapAdjacentBlocks(t *testing.T) {
	v := Load256([]float64{1, 2, 3, 4})
	got := SwapAdjacentBlocks(v).Lanes()
	if diff := cmp.Diff([]float64{3, 4, 1, 2}, got); diff != "" {
		t.Errorf("SwapAdjacentBlocks mismatch (-want +got):\n%s", diff)
	}
}

func TestValueSemantics(t *testing.T) {
	src := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load256(src)
	src[0] = 100
	_ = SlideUpLanes(v, 3)
	_ = Permute2x128(v, v, 0x08)
	if got := GetLane(v, 0); got != 1 {
		t.Errorf("vector changed after operations: lane 0 = %d, want 1", got)
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		tag   Tag
		width int
		name  string
	}{
		{FixedTag128[int32]{}, BlockBytes, "128bit"},
		{FixedTag256[int32]{}, VecBytes, "256bit"},
		{FixedTag256[float64]{}, VecBytes, "256bit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.Width(); got != tt.width {
				t.Errorf("Width() = %d, want %d", got, tt.width)
			}
			if got := tt.tag.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
		})
	}
}
