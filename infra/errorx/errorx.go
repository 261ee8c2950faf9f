// Package errorx 带错误码的错误类型, 底层用 pkg/errors 记录调用栈.
package errorx

import (
	"fmt"
	"io"

	"binable/infra/errorx/errCode"

	"github.com/pkg/errors"
)

type Error struct {
	code  errCode.Code
	cause error // 携带调用栈
}

func New(code errCode.Code, msg string) error {
	return &Error{code: code, cause: errors.New(msg)}
}

// Wrap 给已有错误附加错误码和说明; err 为 nil 时返回 nil
func Wrap(err error, code errCode.Code, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, cause: errors.Wrap(err, msg)}
}

func (e *Error) Code() errCode.Code { return e.code }

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.cause.Error())
}

func (e *Error) Unwrap() error { return e.cause }

// Is 错误码相同即视为同一类错误
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}

// Format %+v 输出调用栈
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s: %+v", e.code, e.cause)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// CodeOf 取错误链上第一个错误码
func CodeOf(err error) (errCode.Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.code, true
	}
	return 0, false
}
