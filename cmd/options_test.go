package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"stridebench/benchmark"
)

const experimentFile = `
repetitions = 3
max_stride = 64
pace = 20
cpu = 2
quiet = true
output = "from-file.html"
log_dir = "file-logs"
`

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("stridebench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestResolveParamsLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.toml")
	if err := os.WriteFile(path, []byte(experimentFile), 0o644); err != nil {
		t.Fatal(err)
	}

	fromFile := benchmark.DefaultParams()
	fromFile.Repetitions = 3
	fromFile.MaxStride = 64
	fromFile.Pace = 20
	fromFile.CPU = 2
	fromFile.Quiet = true

	tests := []struct {
		name      string
		args      []string
		want      func() benchmark.BenchmarkParams
		wantChart string
		wantLogs  string
	}{
		{
			name:      "defaults only",
			args:      nil,
			want:      benchmark.DefaultParams,
			wantChart: "strided_copy.html",
			wantLogs:  ".",
		},
		{
			name:      "file only",
			args:      []string{"-config", path},
			want:      func() benchmark.BenchmarkParams { return fromFile },
			wantChart: "from-file.html",
			wantLogs:  "file-logs",
		},
		{
			name: "explicit flag beats file",
			args: []string{"-config", path, "-repetitions", "7", "-out", "flag.html"},
			want: func() benchmark.BenchmarkParams {
				p := fromFile
				p.Repetitions = 7
				return p
			},
			wantChart: "flag.html",
			wantLogs:  "file-logs",
		},
		{
			name: "explicit zero values clear file values",
			args: []string{"-config", path, "-pace", "0", "-cpu", "-1", "-quiet=false"},
			want: func() benchmark.BenchmarkParams {
				p := fromFile
				p.Pace = 0
				p.CPU = -1
				p.Quiet = false
				return p
			},
			wantChart: "from-file.html",
			wantLogs:  "file-logs",
		},
		{
			name: "flags without file",
			args: []string{"-min-stride", "1", "-max-stride", "8", "-buffer-size", "4096", "-quiet", "-log-dir", "out"},
			want: func() benchmark.BenchmarkParams {
				p := benchmark.DefaultParams()
				p.MinStride = 1
				p.MaxStride = 8
				p.BufferSize = 4096
				p.Quiet = true
				return p
			},
			wantChart: "strided_copy.html",
			wantLogs:  "out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := resolveParams(newFlagSet(), tt.args)
			if err != nil {
				t.Fatalf("resolveParams(%v): %v", tt.args, err)
			}
			if want := tt.want(); opts.Params != want {
				t.Errorf("params = %+v, want %+v", opts.Params, want)
			}
			if opts.ChartPath != tt.wantChart {
				t.Errorf("chart path = %q, want %q", opts.ChartPath, tt.wantChart)
			}
			if opts.LogDir != tt.wantLogs {
				t.Errorf("log dir = %q, want %q", opts.LogDir, tt.wantLogs)
			}
		})
	}
}

func TestResolveParamsNoOpen(t *testing.T) {
	opts, err := resolveParams(newFlagSet(), []string{"-no-open"})
	if err != nil {
		t.Fatal(err)
	}
	if !opts.NoOpen {
		t.Error("NoOpen = false, want true")
	}
}

func TestResolveParamsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-stride-step", "2"}},
		{name: "missing config file", args: []string{"-config", filepath.Join(t.TempDir(), "nope.toml")}},
		{name: "inverted range", args: []string{"-min-stride", "64", "-max-stride", "16"}},
		{name: "zero repetitions", args: []string{"-repetitions", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := resolveParams(newFlagSet(), tt.args); err == nil {
				t.Fatalf("resolveParams(%v): expected error", tt.args)
			}
		})
	}
}
