// Package summary 对分组结果做描述统计.
package summary

import (
	"math"
	"slices"

	"binable/classify/binning"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Stats struct {
	Label  binning.Label
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Std    float64 // 样本标准差, 少于 2 个值为 NaN
	Median float64
}

// Describe 每个分组一条统计, 顺序与 Result 相同; 空组除 Count 外均为 NaN
func Describe[T binning.Number](r binning.Result[T]) []Stats {
	out := make([]Stats, 0, len(r))
	for _, g := range r {
		out = append(out, describeGroup(g.Label, toFloat64(g.Values)))
	}
	return out
}

func describeGroup(label binning.Label, x []float64) Stats {
	s := Stats{
		Label:  label,
		Count:  len(x),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Mean:   math.NaN(),
		Std:    math.NaN(),
		Median: math.NaN(),
	}
	if len(x) == 0 {
		return s
	}

	s.Min = floats.Min(x)
	s.Max = floats.Max(x)
	s.Mean = stat.Mean(x, nil)
	if len(x) > 1 {
		s.Std = stat.StdDev(x, nil)
	}

	// stat.Quantile 要求有序输入, 分组成员通常已升序
	if !slices.IsSorted(x) {
		x = slices.Sorted(slices.Values(x))
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	return s
}

func toFloat64[T binning.Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Spread 最大组与最小组成员数之差, 等频分组时为 0
func Spread(stats []Stats) int {
	if len(stats) == 0 {
		return 0
	}
	lo, hi := stats[0].Count, stats[0].Count
	for _, s := range stats[1:] {
		lo = min(lo, s.Count)
		hi = max(hi, s.Count)
	}
	return hi - lo
}
