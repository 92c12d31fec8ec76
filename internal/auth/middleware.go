package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// 上下文键
const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "user_email"
)

// Middleware 认证中间件：校验 Bearer 令牌并注入用户信息
// 认证失败是唯一面向用户的显式错误类，返回可见的错误消息
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录，请先登录"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization 格式应为 'Bearer <token>'"})
			return
		}

		claims, err := ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "令牌无效或已过期"})
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxEmailKey, claims.Email)
		c.Next()
	}
}
