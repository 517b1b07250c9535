package version

import "fmt"

// 以下变量值通过 --ldflags 的方式注入
var (
	// Version 版本号
	Version = "0.0.1"
	// GitCommit Git 提交哈希
	GitCommit = "unknown"
	// BuildTime 构建时间
	BuildTime = "unknown"
	// GoVersion Go 版本
	GoVersion = "unknown"
)

// GetVersion 获取版本信息
func GetVersion() string {
	return fmt.Sprintf(
		"Version: %s\nGitCommit: %s\nBuildTime: %s\nGoVersion: %s",
		Version, GitCommit, BuildTime, GoVersion,
	)
}
