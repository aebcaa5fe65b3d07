package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stridebench/benchmark"
	"stridebench/report"
)

func main() {
	opts, err := resolveParams(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	params := opts.Params

	if err := benchmark.PinToCPU(params.CPU); err != nil {
		fmt.Printf("Warning: running unpinned: %v\n", err)
	}

	fmt.Printf("Performing strided copy benchmark (strides %d..%d, %d repetitions)...\n",
		params.MinStride, params.MaxStride, params.Repetitions)
	results, err := benchmark.RunStridedBenchmark(context.Background(), params)
	if err != nil {
		fmt.Printf("Error running benchmark: %v\n", err)
		return
	}

	report.DisplayResults(os.Stdout, results)

	logFileName, err := report.WriteSampleLog(results, opts.LogDir)
	if err != nil {
		fmt.Printf("Error writing sample log: %v\n", err)
	} else {
		fmt.Printf("Samples written to %s\n", logFileName)
	}

	if err := report.RenderChart(results, opts.ChartPath); err != nil {
		fmt.Printf("Error rendering chart: %v\n", err)
		return
	}
	fmt.Printf("Chart written to %s\n", opts.ChartPath)

	if opts.NoOpen {
		return
	}
	if err := report.OpenChart(opts.ChartPath); err != nil {
		fmt.Printf("Error opening chart: %v\n", err)
	}
}
