package errcode

const (
	// NoErr 无错误
	NoErr = 0

	// Unauthenticated 未提供认证信息
	Unauthenticated = 40100
	// TokenInvalid Token 不合法
	TokenInvalid = 40101
	// TokenExpired Token 过期
	TokenExpired = 40102
	// Forbidden 角色权限不足
	Forbidden = 40301
	// NotFound 资源不存在
	NotFound = 40401

	// Unknown 未知错误
	Unknown = 50001
	// DependencyUnavailable 依赖服务（数据库）不可用
	DependencyUnavailable = 50301
)
