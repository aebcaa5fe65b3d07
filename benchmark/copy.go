package benchmark

import "fmt"

// sink keeps the last destination buffer reachable so the copy has an observable effect.
var sink []byte

// StridedCopy copies src[i] into dst[i] for every i that is a multiple of stride.
// It touches ceil(len(src)/stride) indices and panics if dst is shorter than src.
//
//go:noinline
func StridedCopy(stride int, src, dst []byte) {
	if stride < 1 {
		panic(fmt.Sprintf("benchmark: invalid stride %d", stride))
	}
	for i := 0; i < len(src); i += stride {
		dst[i] = src[i]
	}
}

// newBuffer allocates a zero-filled buffer behind a call the compiler cannot see through.
//
//go:noinline
func newBuffer(size int) []byte {
	return make([]byte, size)
}
