package main

import (
	"flag"
	"fmt"

	"stridebench/benchmark"
	"stridebench/config"
)

// runOptions is everything main needs once flags and the config file are merged.
type runOptions struct {
	Params    benchmark.BenchmarkParams
	ChartPath string
	LogDir    string
	NoOpen    bool
}

// resolveParams parses args into fs and layers the settings: compiled-in defaults,
// then the -config file, then any flag set explicitly on the command line.
func resolveParams(fs *flag.FlagSet, args []string) (runOptions, error) {
	defaults := benchmark.DefaultParams()

	// Define command-line flags
	bufferSize := fs.Int("buffer-size", defaults.BufferSize, "Size of the source and destination buffers in bytes")
	repetitions := fs.Int("repetitions", defaults.Repetitions, "Number of timed copies per stride")
	minStride := fs.Int("min-stride", defaults.MinStride, "First stride to measure (inclusive)")
	maxStride := fs.Int("max-stride", defaults.MaxStride, "Last stride to measure (inclusive)")
	pace := fs.Int("pace", 0, "Max strides per second (0 means no limit)")
	cpu := fs.Int("cpu", defaults.CPU, "CPU to pin the measuring thread to (-1 disables pinning)")
	quiet := fs.Bool("quiet", false, "Hide the progress bar")
	output := fs.String("out", "strided_copy.html", "Path of the chart file")
	logDir := fs.String("log-dir", ".", "Directory for the per-sample log")
	noOpen := fs.Bool("no-open", false, "Write the chart without opening a browser")
	configFilePath := fs.String("config", "", "Optional TOML experiment file")

	if err := fs.Parse(args); err != nil {
		return runOptions{}, err
	}

	opts := runOptions{
		Params:    defaults,
		ChartPath: *output,
		LogDir:    *logDir,
		NoOpen:    *noOpen,
	}

	if *configFilePath != "" {
		exp, err := config.LoadExperimentConfig(*configFilePath)
		if err != nil {
			return runOptions{}, fmt.Errorf("loading config: %w", err)
		}
		exp.Apply(&opts.Params)
		if exp.Output != "" {
			opts.ChartPath = exp.Output
		}
		if exp.LogDir != "" {
			opts.LogDir = exp.LogDir
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "buffer-size":
			opts.Params.BufferSize = *bufferSize
		case "repetitions":
			opts.Params.Repetitions = *repetitions
		case "min-stride":
			opts.Params.MinStride = *minStride
		case "max-stride":
			opts.Params.MaxStride = *maxStride
		case "pace":
			opts.Params.Pace = *pace
		case "cpu":
			opts.Params.CPU = *cpu
		case "quiet":
			opts.Params.Quiet = *quiet
		case "out":
			opts.ChartPath = *output
		case "log-dir":
			opts.LogDir = *logDir
		}
	})

	if err := opts.Params.Validate(); err != nil {
		return runOptions{}, err
	}
	return opts, nil
}
