package config

import (
	"fmt"

	"stridebench/benchmark"

	"github.com/BurntSushi/toml"
)

// Experiment mirrors the benchmark params that may be set from a TOML file.
// Zero values mean "not set" and keep the compiled-in default.
type Experiment struct {
	BufferSize  int    `toml:"buffer_size"` // Bytes per buffer
	Repetitions int    `toml:"repetitions"` // Timed copies per stride
	MinStride   int    `toml:"min_stride"`  // First stride (inclusive)
	MaxStride   int    `toml:"max_stride"`  // Last stride (inclusive)
	Pace        int    `toml:"pace"`        // Max strides per second
	CPU         *int   `toml:"cpu"`         // CPU to pin to; nil keeps pinning off since 0 is a real CPU
	Quiet       bool   `toml:"quiet"`       // Hide the progress bar
	Output      string `toml:"output"`      // Chart file path
	LogDir      string `toml:"log_dir"`     // Directory for the sample log
}

// LoadExperimentConfig loads an experiment description from the specified TOML file
func LoadExperimentConfig(configFilePath string) (Experiment, error) {
	fmt.Printf("Loading experiment config from: %s\n", configFilePath)
	var exp Experiment
	md, err := toml.DecodeFile(configFilePath, &exp)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to load config from file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Experiment{}, fmt.Errorf("unknown keys in %s: %v", configFilePath, undecoded)
	}
	return exp, nil
}

// Apply overrides params with every field the file set.
func (e Experiment) Apply(params *benchmark.BenchmarkParams) {
	if e.BufferSize != 0 {
		params.BufferSize = e.BufferSize
	}
	if e.Repetitions != 0 {
		params.Repetitions = e.Repetitions
	}
	if e.MinStride != 0 {
		params.MinStride = e.MinStride
	}
	if e.MaxStride != 0 {
		params.MaxStride = e.MaxStride
	}
	if e.Pace != 0 {
		params.Pace = e.Pace
	}
	if e.CPU != nil {
		params.CPU = *e.CPU
	}
	if e.Quiet {
		params.Quiet = true
	}
}
