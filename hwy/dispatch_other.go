//go:build !amd64

package hwy

func init() {
	// Vec256 has no native 256-bit two-block register outside amd64
	// (NEON and SVE are 128-bit or scalable), so other architectures
	// use the portable slide tables.
	setScalarMode()
}
