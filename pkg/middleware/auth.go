package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"

	"github.com/narasux/bloghub/pkg/common/errcode"
	"github.com/narasux/bloghub/pkg/envs"
	"github.com/narasux/bloghub/pkg/utils/ginx"
)

// TokenClaims 访问令牌内容（令牌由外部认证服务签发）
type TokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Auth 解析 Authorization Bearer Token，将用户 ID / 角色写入请求上下文
//
// 不携带令牌的请求视为匿名放行，是否要求登录由各路由组决定（RequireRole）
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken := c.GetHeader("Authorization")
		if rawToken == "" {
			c.Next()
			return
		}

		claims, err := parseToken(strings.TrimPrefix(rawToken, "Bearer "))
		if err != nil {
			code, message := errcode.TokenInvalid, "invalid access token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				code, message = errcode.TokenExpired, "access token expired"
			}
			ginx.SetError(c, err)
			ginx.SetErrResp(c, http.StatusUnauthorized, code, message)
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			ginx.SetError(c, errors.Wrap(err, "invalid subject in token"))
			ginx.SetErrResp(c, http.StatusUnauthorized, errcode.TokenInvalid, "invalid access token")
			c.Abort()
			return
		}

		ginx.SetUserID(c, userID)
		ginx.SetUserRole(c, claims.Role)
		c.Next()
	}
}

// RequireRole 要求当前请求为已认证用户且具备指定角色
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ginx.GetUserID(c); !ok {
			ginx.SetErrResp(c, http.StatusUnauthorized, errcode.Unauthenticated, "authentication required")
			c.Abort()
			return
		}
		if ginx.GetUserRole(c) != role {
			ginx.SetErrResp(c, http.StatusForbidden, errcode.Forbidden, "permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// 解析并校验访问令牌
func parseToken(tokenStr string) (*TokenClaims, error) {
	claims := TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(envs.JWTSigningKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &claims, nil
}
