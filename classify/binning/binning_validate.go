package binning

import (
	"fmt"
	"math"
	"strings"

	"binable/infra/errorx"
	"binable/infra/errorx/errCode"

	"github.com/spf13/cast"
)

// ErrInvalidInput 所有校验失败的错误都与它 errors.Is 相等
var ErrInvalidInput = errorx.New(errCode.INVALID_INPUT, "invalid input")

func invalidInput(format string, args ...interface{}) error {
	return errorx.New(errCode.INVALID_INPUT, fmt.Sprintf(format, args...))
}

// toKey 把动态元素转换为排序用的 float64; 整数, 浮点数和数字字符串视为数值, bool 和 nil 不是
func toKey(v interface{}) (float64, bool) {
	switch s := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		s = strings.TrimSpace(s)
		if !isDecimalString(s) {
			return 0, false
		}
		v = s
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, isFinite(f)
}

// isDecimalString 排除 strconv 额外接受的十六进制浮点和 '_' 分隔写法
func isDecimalString(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}

// NaN 和 Inf 无法落入任何区间
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func dynamicKeys(values []interface{}) ([]float64, error) {
	keys := make([]float64, len(values))
	for i, v := range values {
		f, ok := toKey(v)
		if !ok {
			return nil, invalidInput("element %d (%v) is not numeric", i, v)
		}
		keys[i] = f
	}
	return keys, nil
}

func numberKeys[T Number](values []T) ([]float64, error) {
	keys := make([]float64, len(values))
	for i, v := range values {
		f := float64(v)
		if !isFinite(f) {
			return nil, invalidInput("element %d (%v) is not numeric", i, v)
		}
		keys[i] = f
	}
	return keys, nil
}

func canEquallyDistribute(n int) bool {
	return n%GROUP_COUNT == 0
}

// validate 在任何计算之前完成全部校验
func validate(n int, mode Mode) error {
	if !mode.valid() {
		return invalidInput("unknown mode %d", int(mode))
	}
	if mode == MODE_EQUAL_FREQUENCY && !canEquallyDistribute(n) {
		return invalidInput("%d values cannot be distributed equally across %d groups", n, GROUP_COUNT)
	}
	return nil
}
