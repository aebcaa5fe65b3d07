package report

import (
	"fmt"
	"io"

	"stridebench/benchmark"

	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

func init() {
	console.SetColor("Best", color.New(color.FgGreen, color.Bold))
	console.SetColor("Worst", color.New(color.FgRed, color.Bold))
}

// DisplayResults shows the summary of the strided copy sweep
func DisplayResults(w io.Writer, results *benchmark.Results) {
	header := color.New(color.FgCyan, color.Bold)
	params := results.Params

	header.Fprintln(w, "\nStrided Copy Results:")
	fmt.Fprintf(w, "Host: %s\n", results.Host)
	fmt.Fprintf(w, "Duration: %s\n", results.Elapsed)
	fmt.Fprintf(w, "Buffer Size: %s\n", formatSize(params.BufferSize))
	fmt.Fprintf(w, "Strides: %d..%d (%d strides x %d repetitions)\n",
		params.MinStride, params.MaxStride, len(results.Strides), params.Repetitions)

	if len(results.Strides) == 0 {
		return
	}

	best, worst := results.Strides[0], results.Strides[0]
	overall := benchmark.Aggregate{Min: best.Aggregate.Min, Max: best.Aggregate.Max}
	var sum float64
	for _, sr := range results.Strides {
		if sr.Aggregate.Avg > best.Aggregate.Avg {
			best = sr
		}
		if sr.Aggregate.Avg < worst.Aggregate.Avg {
			worst = sr
		}
		if sr.Aggregate.Min < overall.Min {
			overall.Min = sr.Aggregate.Min
		}
		if sr.Aggregate.Max > overall.Max {
			overall.Max = sr.Aggregate.Max
		}
		sum += sr.Aggregate.Avg
	}
	overall.Avg = sum / float64(len(results.Strides))

	fmt.Fprintln(w, console.Colorize("Best", fmt.Sprintf("Fastest Stride: %d (%.2f loops/s average)", best.Stride, best.Aggregate.Avg)))
	fmt.Fprintln(w, console.Colorize("Worst", fmt.Sprintf("Slowest Stride: %d (%.2f loops/s average)", worst.Stride, worst.Aggregate.Avg)))
	fmt.Fprintf(w, "Throughput Range: %.2f .. %.2f loops/s (mean of averages %.2f)\n", overall.Min, overall.Max, overall.Avg)
}

// formatSize renders a byte count the way the chart title does: "32mb", "8kb", "100b".
func formatSize(size int) string {
	switch {
	case size >= 1024*1024 && size%(1024*1024) == 0:
		return fmt.Sprintf("%dmb", size/1024/1024)
	case size >= 1024 && size%1024 == 0:
		return fmt.Sprintf("%dkb", size/1024)
	default:
		return fmt.Sprintf("%db", size)
	}
}
