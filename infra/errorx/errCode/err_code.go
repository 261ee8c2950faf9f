package errCode

// 错误码
type Code int

const (
	INVALID_VALUE Code = iota + 1 // 参数取值非法
	EMPTY_VALUE                   // 输入为空
	INVALID_INPUT                 // 输入序列不满足分箱要求
	CONFIG_ERROR                  // 配置文件错误
)

func (c Code) String() string {
	switch c {
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case INVALID_INPUT:
		return "INVALID_INPUT"
	case CONFIG_ERROR:
		return "CONFIG_ERROR"
	default:
		return "UNKNOWN"
	}
}
