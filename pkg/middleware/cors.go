package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/narasux/bloghub/pkg/envs"
	"github.com/narasux/bloghub/pkg/utils/ginx"
)

// Cors 跨域配置（SPA 前端与 API 不同源部署）
func Cors() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = strings.Split(envs.AllowedOrigins, ",")
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", ginx.RequestIDHeaderKey)
	cfg.AllowCredentials = true
	cfg.MaxAge = 12 * time.Hour
	return cors.New(cfg)
}
