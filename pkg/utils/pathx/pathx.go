package pathx

import (
	"path/filepath"
	"runtime"
)

// GetCurPKGPath 获取调用方所在包的绝对路径
func GetCurPKGPath() string {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		return "."
	}
	return filepath.Dir(file)
}
