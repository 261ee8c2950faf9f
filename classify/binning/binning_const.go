package binning

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// 分组数固定为 3
const GROUP_COUNT = 3

type Label string

const (
	LABEL_LOW    Label = "Low"
	LABEL_MEDIUM Label = "Medium"
	LABEL_HIGH   Label = "High"
)

var labels = [GROUP_COUNT]Label{LABEL_LOW, LABEL_MEDIUM, LABEL_HIGH}

// Labels 按数值区间升序返回分组名
func Labels() []Label {
	out := make([]Label, GROUP_COUNT)
	copy(out, labels[:])
	return out
}

// Number 可直接分箱的数值类型
type Number interface {
	constraints.Integer | constraints.Float
}

// 分箱方式
type Mode int

const (
	MODE_NONE            Mode = iota // "none", 按区间分箱但不调整最大值
	MODE_EQUAL_WIDTH                 // "equal_width"
	MODE_EQUAL_FREQUENCY             // "equal_frequency"
	MODE_ERROR                       // "ERROR"
)

func (m Mode) String() string {
	switch m {
	case MODE_NONE:
		return "none"
	case MODE_EQUAL_WIDTH:
		return "equal_width"
	case MODE_EQUAL_FREQUENCY:
		return "equal_frequency"
	default:
		return "ERROR"
	}
}

// GetMode 解析配置中的分箱方式, 大小写和 '-' / '_' 不敏感, 空串为 MODE_NONE
func GetMode(s string) Mode {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", "none":
		return MODE_NONE
	case "equal_width":
		return MODE_EQUAL_WIDTH
	case "equal_frequency":
		return MODE_EQUAL_FREQUENCY
	default:
		return MODE_ERROR
	}
}

func (m Mode) valid() bool {
	return m >= MODE_NONE && m < MODE_ERROR
}
