package binning

import (
	"github.com/tidwall/sjson"
)

type Group[T any] struct {
	Label  Label
	Values []T
}

// Result 按 Low, Medium, High 顺序排列的分组结果, 每组都存在
type Result[T any] []Group[T]

// Get 返回分组成员, 不存在的分组返回 nil
func (r Result[T]) Get(label Label) []T {
	for _, g := range r {
		if g.Label == label {
			return g.Values
		}
	}
	return nil
}

func (r Result[T]) Labels() []Label {
	out := make([]Label, len(r))
	for i, g := range r {
		out[i] = g.Label
	}
	return out
}

func (r Result[T]) Sizes() []int {
	out := make([]int, len(r))
	for i, g := range r {
		out[i] = len(g.Values)
	}
	return out
}

// Total 所有分组成员数之和, 等于输入长度
func (r Result[T]) Total() int {
	n := 0
	for _, g := range r {
		n += len(g.Values)
	}
	return n
}

// Map 转为无序 map, 需要顺序时用 Labels()
func (r Result[T]) Map() map[Label][]T {
	out := make(map[Label][]T, len(r))
	for _, g := range r {
		out[g.Label] = g.Values
	}
	return out
}

// MarshalJSON 输出 {"Low":[...],"Medium":[...],"High":[...]}, 键按分组顺序
func (r Result[T]) MarshalJSON() ([]byte, error) {
	out := []byte("{}")
	var err error
	for _, g := range r {
		values := g.Values
		if values == nil {
			values = []T{}
		}
		if out, err = sjson.SetBytes(out, string(g.Label), values); err != nil {
			return nil, err
		}
	}
	return out, nil
}
