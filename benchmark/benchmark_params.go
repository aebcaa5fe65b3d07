package benchmark

import "fmt"

const (
	DefaultBufferSize  = 32 * 1024 * 1024 // 32 MiB per buffer
	DefaultRepetitions = 10
	DefaultMinStride   = 16
	DefaultMaxStride   = 512
)

// BenchmarkParams holds the parameters for the strided copy benchmark
type BenchmarkParams struct {
	BufferSize  int  // Size of the source and destination buffers in bytes
	Repetitions int  // Number of timed copies per stride
	MinStride   int  // First stride measured (inclusive)
	MaxStride   int  // Last stride measured (inclusive)
	Pace        int  // Max strides per second (0 means no limit)
	CPU         int  // CPU to pin the measuring thread to (-1 disables pinning)
	Quiet       bool // Suppress the progress bar
}

// DefaultParams returns the fixed experiment: 32 MiB buffers, 10 repetitions, strides 16..512.
func DefaultParams() BenchmarkParams {
	return BenchmarkParams{
		BufferSize:  DefaultBufferSize,
		Repetitions: DefaultRepetitions,
		MinStride:   DefaultMinStride,
		MaxStride:   DefaultMaxStride,
		CPU:         -1,
	}
}

// Validate checks that the params describe a runnable experiment.
func (p BenchmarkParams) Validate() error {
	if p.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", p.BufferSize)
	}
	if p.Repetitions <= 0 {
		return fmt.Errorf("repetitions must be positive, got %d", p.Repetitions)
	}
	if p.MinStride < 1 {
		return fmt.Errorf("min stride must be at least 1, got %d", p.MinStride)
	}
	if p.MaxStride < p.MinStride {
		return fmt.Errorf("max stride %d is below min stride %d", p.MaxStride, p.MinStride)
	}
	if p.Pace < 0 {
		return fmt.Errorf("pace must not be negative, got %d", p.Pace)
	}
	return nil
}

// StrideCount returns how many strides the params cover.
func (p BenchmarkParams) StrideCount() int {
	return p.MaxStride - p.MinStride + 1
}
