package exception

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
)

// Recover 用于 go func() { defer exception.Recover() ... }
func Recover() {
	if msg := recover(); msg != nil {
		logx.Error("panic recover :", msg)
	}
}

// Try 执行fn, 将panic转换为error返回
func Try(fn func() error) (err error) {
	defer func() {
		if msg := recover(); msg != nil {
			logx.Error("panic recover :", msg)
			err = fmt.Errorf("panic: %v", msg)
		}
	}()
	return fn()
}
