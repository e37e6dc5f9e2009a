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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// The CPU is still probed so HasAVX2 is accurate, but without archsimd there
// are no AVX2 kernels to install and slides use the portable tables.

func init() {
	hasAVX2 = cpu.X86.HasAVX2

	// Build with GOEXPERIMENT=simd for the AVX2 slide kernels.
	setScalarMode()
}
