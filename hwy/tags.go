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

// Tag represents a vector size tag that determines how many lanes
// a register of that width holds.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit).
	Width() int

	// Name returns a human-readable name for this tag ("128bit", "256bit").
	Name() string
}

var (
	_ Tag = FixedTag128[float32]{}
	_ Tag = FixedTag256[float32]{}
)

// FixedTag128 describes a single 128-bit block.
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return BlockBytes
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	return BlockBytes / laneSize[T]()
}

// FixedTag256 describes a full Vec256 register: two 128-bit blocks.
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return VecBytes
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// MaxLanes returns the number of T values that fit in 256 bits.
// This is the lane count every slide amount is measured against.
func (t FixedTag256[T]) MaxLanes() int {
	return VecBytes / laneSize[T]()
}
