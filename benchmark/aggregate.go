package benchmark

import "math"

// Aggregate is the min/average/max throughput over the samples of one stride.
type Aggregate struct {
	Min float64
	Avg float64
	Max float64
}

// Summarize reduces samples to an Aggregate. An empty slice yields the zero value.
func Summarize(samples []float64) Aggregate {
	if len(samples) == 0 {
		return Aggregate{}
	}
	agg := Aggregate{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, s := range samples {
		agg.Min = math.Min(agg.Min, s)
		agg.Max = math.Max(agg.Max, s)
		sum += s
	}
	// Summation rounding can push the mean a hair outside [Min, Max].
	agg.Avg = math.Min(math.Max(sum/float64(len(samples)), agg.Min), agg.Max)
	return agg
}
