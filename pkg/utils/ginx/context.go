package ginx

import (
	"github.com/gin-gonic/gin"

	"github.com/narasux/bloghub/pkg/envs"
)

const (
	// RequestIDKey ...
	RequestIDKey = "requestID"
	// UserIDKey 已认证用户 ID
	UserIDKey = "userID"
	// UserRoleKey 已认证用户角色
	UserRoleKey = "userRole"
	// ErrorKey ...
	ErrorKey = "error"
)

// GetRequestID ...
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// SetRequestID ...
func SetRequestID(c *gin.Context, requestID string) {
	c.Set(RequestIDKey, requestID)
}

// GetUserID 获取已认证用户 ID，匿名请求返回 (0, false)
func GetUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// SetUserID ...
func SetUserID(c *gin.Context, userID int64) {
	c.Set(UserIDKey, userID)
}

// GetUserRole ...
func GetUserRole(c *gin.Context) string {
	return c.GetString(UserRoleKey)
}

// SetUserRole ...
func SetUserRole(c *gin.Context, role string) {
	c.Set(UserRoleKey, role)
}

// GetError ...
func GetError(c *gin.Context) (any, bool) {
	return c.Get(ErrorKey)
}

// SetError ...
func SetError(c *gin.Context, err error) {
	c.Set(ErrorKey, err)
}

// GetClientIP 获取客户端 IP，优先使用反向代理设置的 Header
func GetClientIP(c *gin.Context) string {
	if envs.RealClientIPHeaderKey != "" {
		if ip := c.GetHeader(envs.RealClientIPHeaderKey); ip != "" {
			return ip
		}
	}
	return c.ClientIP()
}
