package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"stridebench/benchmark"
)

// WriteSampleLog records every sample and aggregate in a timestamped, tab-separated file under dir.
// It returns the path of the file written.
func WriteSampleLog(results *benchmark.Results, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create log dir: %w", err)
	}

	timestamp := results.Started.Format("20060102_150405")
	logFileName := filepath.Join(dir, fmt.Sprintf("strided_samples_%s.txt", timestamp))
	logFile, err := os.Create(logFileName)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	w := bufio.NewWriter(logFile)
	fmt.Fprintf(w, "# host\t%s\n", results.Host)
	fmt.Fprintf(w, "# buffer_size\t%d\n", results.Params.BufferSize)
	fmt.Fprintf(w, "# repetitions\t%d\n", results.Params.Repetitions)
	for _, sr := range results.Strides {
		for i, s := range sr.Samples {
			fmt.Fprintf(w, "sample\t%d\t%d\t%.3f\n", sr.Stride, i, s)
		}
		fmt.Fprintf(w, "aggregate\t%d\t%.3f\t%.3f\t%.3f\n", sr.Stride, sr.Aggregate.Min, sr.Aggregate.Avg, sr.Aggregate.Max)
	}

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to write log file: %w", err)
	}
	return logFileName, logFile.Close()
}
