// Package binning 把一组数值分到 Low, Medium, High 三个有序分组.
//
// 支持三种方式:
//   - MODE_EQUAL_FREQUENCY: 升序后切成三段等长区间, 输入长度必须能被 3 整除
//   - MODE_EQUAL_WIDTH: 以最小值为起点, 最大值向上取整到 3 的倍数后三等分宽度
//   - MODE_NONE: 与等宽相同, 但不调整最大值
//
// 区间为 [b0,b1), [b1,b2), [b2,+inf). 最大值从 0 开始累计, 因此全为负数时宽度为 0, 所有数值进入 Low.
package binning

import (
	"cmp"
	"maps"
	"slices"

	"binable/infra/observe/log/staticLog"
)

// Classifier 分箱配置. 值类型, Set 方法返回修改后的副本, 可在多个 goroutine 间共享
type Classifier struct {
	mode Mode
}

func NewClassifier() Classifier {
	return Classifier{mode: MODE_NONE}
}

// SetEqualWidth 开启时清除等频; 关闭时只清除等宽
func (c Classifier) SetEqualWidth(enabled bool) Classifier {
	if enabled {
		c.mode = MODE_EQUAL_WIDTH
	} else if c.mode == MODE_EQUAL_WIDTH {
		c.mode = MODE_NONE
	}
	return c
}

// SetEqualFrequency 开启时清除等宽; 关闭时只清除等频
func (c Classifier) SetEqualFrequency(enabled bool) Classifier {
	if enabled {
		c.mode = MODE_EQUAL_FREQUENCY
	} else if c.mode == MODE_EQUAL_FREQUENCY {
		c.mode = MODE_NONE
	}
	return c
}

func (c Classifier) WithMode(mode Mode) Classifier {
	c.mode = mode
	return c
}

func (c Classifier) Mode() Mode { return c.mode }

func (c Classifier) EqualWidth() bool { return c.mode == MODE_EQUAL_WIDTH }

func (c Classifier) EqualFrequency() bool { return c.mode == MODE_EQUAL_FREQUENCY }

// Classify 动态输入, 逐个检查元素是否为数值; 结果保留原始元素
func (c Classifier) Classify(values []interface{}) (Result[interface{}], error) {
	keys, err := dynamicKeys(values)
	if err != nil {
		staticLog.Warnf("classify rejected: %v", err)
		return nil, err
	}
	return classifyKeys(values, keys, c.mode, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})
}

func (c Classifier) ClassifyFloat64(values []float64) (Result[float64], error) {
	return ClassifyNumbers(values, c.mode)
}

func (c Classifier) Bins(values []float64) ([]HistogramBin, error) {
	return Bins(values, c.mode)
}

// ClassifyNumbers 按指定方式分组, 不依赖 Classifier 状态
func ClassifyNumbers[T Number](values []T, mode Mode) (Result[T], error) {
	keys, err := numberKeys(values)
	if err != nil {
		staticLog.Warnf("classify rejected: %v", err)
		return nil, err
	}
	// 按原始值排序, 超过 2^53 的整数转 float64 后可能相等
	return classifyKeys(values, keys, mode, func(a, b int) int {
		return cmp.Compare(values[a], values[b])
	})
}

// classifyKeys keys[i] 为 values[i] 的数值, 只用于区间查找; compare 决定排序
func classifyKeys[T any](values []T, keys []float64, mode Mode, compare func(a, b int) int) (Result[T], error) {
	if err := validate(len(keys), mode); err != nil {
		staticLog.Warnf("classify rejected: %v", err)
		return nil, err
	}

	order := sortedOrder(len(values), compare)

	var grouped map[int][]int
	if mode == MODE_EQUAL_FREQUENCY {
		grouped = groupIntoChunks(order)
	} else {
		ranges, width := getRanges(keys, mode)
		grouped = groupIntoRange(keys, order, ranges, width)
	}

	res := normalize(values, grouped)
	staticLog.WithFields(map[string]interface{}{
		"mode":  mode.String(),
		"n":     len(values),
		"sizes": res.Sizes(),
	}).Debug("classified")
	return res, nil
}

// sortedOrder 升序的下标, 相等时保持原顺序
func sortedOrder(n int, compare func(a, b int) int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, compare)
	return order
}

// normalize 补齐缺失的分组, 按分组下标排序后依次对应 Low, Medium, High
func normalize[T any](values []T, grouped map[int][]int) Result[T] {
	for i := 0; i < GROUP_COUNT; i++ {
		if _, ok := grouped[i]; !ok {
			grouped[i] = nil
		}
	}

	res := make(Result[T], 0, GROUP_COUNT)
	for pos, key := range slices.Sorted(maps.Keys(grouped)) {
		members := make([]T, 0, len(grouped[key]))
		for _, idx := range grouped[key] {
			members = append(members, values[idx])
		}
		res = append(res, Group[T]{Label: labels[pos], Values: members})
	}
	return res
}
