package benchmark

import (
	"context"
	"fmt"
	"io"
	"time"

	"stridebench/progress"
	"stridebench/sysinfo"

	"golang.org/x/time/rate"
)

// StrideResult holds the raw samples and their aggregate for one stride.
type StrideResult struct {
	Stride    int
	Samples   []float64 // Copies per second, one per repetition
	Aggregate Aggregate
}

// Results is the outcome of a full sweep over the stride range.
type Results struct {
	Params  BenchmarkParams
	Host    sysinfo.HostInfo
	Strides []StrideResult
	Started time.Time
	Elapsed time.Duration
}

// StrideLengths returns the stride lengths in measurement order.
func (r *Results) StrideLengths() []int {
	out := make([]int, len(r.Strides))
	for i, s := range r.Strides {
		out[i] = s.Stride
	}
	return out
}

// measureCopy times one strided copy over freshly allocated buffers and returns copies per second.
func measureCopy(stride, size int) float64 {
	src := newBuffer(size)
	dst := newBuffer(size)

	start := time.Now()
	StridedCopy(stride, src, dst)
	elapsed := time.Since(start)

	sink = dst

	if elapsed < time.Nanosecond {
		elapsed = time.Nanosecond
	}
	return float64(time.Second) / float64(elapsed.Nanoseconds())
}

// RunStridedBenchmark sweeps MinStride..MaxStride, timing Repetitions copies at each stride.
func RunStridedBenchmark(ctx context.Context, params BenchmarkParams) (*Results, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid benchmark params: %w", err)
	}

	results := &Results{
		Params:  params,
		Host:    sysinfo.Describe(),
		Strides: make([]StrideResult, 0, params.StrideCount()),
		Started: time.Now(),
	}

	// Pacing spaces strides out, never the timed copies themselves
	var limiter *rate.Limiter
	if params.Pace > 0 {
		limiter = rate.NewLimiter(rate.Limit(params.Pace), 1)
	}

	var out io.Writer
	if params.Quiet {
		out = io.Discard
	}
	pb := progress.NewProgressBar(int64(params.StrideCount()), out)
	pb.SetCaption(fmt.Sprintf("Strided copy (%d MiB)", params.BufferSize/(1024*1024)))

	for stride := params.MinStride; stride <= params.MaxStride; stride++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				pb.Finish()
				return nil, fmt.Errorf("stride %d: %w", stride, err)
			}
		}

		samples := make([]float64, params.Repetitions)
		for i := range samples {
			samples[i] = measureCopy(stride, params.BufferSize)
		}

		results.Strides = append(results.Strides, StrideResult{
			Stride:    stride,
			Samples:   samples,
			Aggregate: Summarize(samples),
		})
		pb.Increment()
	}

	pb.Finish()
	results.Elapsed = time.Since(results.Started)
	return results, nil
}
