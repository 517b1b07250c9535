package envx

import (
	"os"
	"strconv"
)

// Get 获取环境变量，不存在则使用默认值
func Get(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

// GetInt 获取整型环境变量，不存在或解析失败则使用默认值
func GetInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
