package binning

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// HistogramBin 每个分组的区间和计数
type HistogramBin struct {
	Label Label
	From  float64
	To    float64
	Count int
}

// 最小值, 空输入为 0
func determineLowestValue(keys []float64) float64 {
	if len(keys) == 0 {
		return 0
	}
	return floats.Min(keys)
}

// 最大值从 0 开始累计, 全为负数时结果为 0
func determineHighestValue(keys []float64) float64 {
	if len(keys) == 0 {
		return 0
	}
	return math.Max(0, floats.Max(keys))
}

// getEqualWidth 把最大值向上取整到能被分组数整除的最小整数.
// 等价于 ceil 后逐次加 1, 但大于 2^53 时逐次加 1 不会改变浮点值
func getEqualWidth(highest float64) float64 {
	return math.Ceil(math.Ceil(highest)/GROUP_COUNT) * GROUP_COUNT
}

// getRanges 固定生成 GROUP_COUNT+1 个边界 lowest + i*width;
// 最后一个边界只用于展示, 最后一个区间没有上界
func getRanges(keys []float64, mode Mode) (ranges [GROUP_COUNT + 1]float64, width float64) {
	lowest := determineLowestValue(keys)
	highest := determineHighestValue(keys)
	if mode == MODE_EQUAL_WIDTH {
		highest = getEqualWidth(highest)
	}
	width = highest / GROUP_COUNT
	// 最大值接近 MaxFloat64 时取整会溢出, 按宽度退化处理
	if math.IsInf(width, 0) {
		width = 0
	}

	ranges[0] = lowest
	for i := 1; i < len(ranges); i++ {
		ranges[i] = lowest + float64(i)*width
	}
	return ranges, width
}

// rangeIndex 按顺序查找 [ranges[i], ranges[i+1]) , 都不满足则落在最后一组
func rangeIndex(v float64, ranges [GROUP_COUNT + 1]float64) int {
	for i := 0; i < GROUP_COUNT-1; i++ {
		if v >= ranges[i] && v < ranges[i+1] {
			return i
		}
	}
	return GROUP_COUNT - 1
}

// groupIntoRange 按区间分组, order 为升序后的下标; width <= 0 时全部进入第一组
func groupIntoRange(keys []float64, order []int, ranges [GROUP_COUNT + 1]float64, width float64) map[int][]int {
	grouped := make(map[int][]int, GROUP_COUNT)
	for _, idx := range order {
		key := 0
		if width > 0 {
			key = rangeIndex(keys[idx], ranges)
		}
		grouped[key] = append(grouped[key], idx)
	}
	return grouped
}

// groupIntoChunks 等频分组: 升序后切成 GROUP_COUNT 段等长连续区间
func groupIntoChunks(order []int) map[int][]int {
	size := len(order) / GROUP_COUNT
	grouped := make(map[int][]int, GROUP_COUNT)
	for i := 0; i < GROUP_COUNT; i++ {
		grouped[i] = order[i*size : (i+1)*size]
	}
	return grouped
}

// Bins 返回分组区间和每组数量.
// 区间模式下 From/To 为分箱边界 (宽度退化时均为最小值); 等频模式下为组内最小值和最大值, 空组为 0.
func Bins[T Number](values []T, mode Mode) ([]HistogramBin, error) {
	keys, err := numberKeys(values)
	if err != nil {
		return nil, err
	}
	res, err := ClassifyNumbers(values, mode)
	if err != nil {
		return nil, err
	}

	result := make([]HistogramBin, GROUP_COUNT)
	if mode == MODE_EQUAL_FREQUENCY {
		for i, g := range res {
			result[i] = HistogramBin{Label: g.Label, Count: len(g.Values)}
			if n := len(g.Values); n > 0 {
				result[i].From = float64(g.Values[0])
				result[i].To = float64(g.Values[n-1])
			}
		}
		return result, nil
	}

	ranges, _ := getRanges(keys, mode)
	for i, g := range res {
		result[i] = HistogramBin{
			Label: g.Label,
			From:  ranges[i],
			To:    ranges[i+1],
			Count: len(g.Values),
		}
	}
	return result, nil
}
