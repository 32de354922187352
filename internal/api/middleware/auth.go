package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-blog/internal/model"
	"github.com/d60-Lab/social-blog/internal/repository"
	"github.com/d60-Lab/social-blog/pkg/response"
	"github.com/d60-Lab/social-blog/pkg/token"
)

const contextUserKey = "currentUser"

// Auth 校验 Bearer 令牌并按 subject 实时查库取用户（不缓存），
// 挂到请求上下文。失败在任何受保护 handler 之前拦截。
func Auth(users repository.UserRepository, tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "No token provided")
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")
		if raw == "" {
			response.Unauthorized(c, "Invalid token format")
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			// 令牌有效但用户已不存在，同样视为未授权
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser 取出 Auth 挂载的用户；仅在受保护路由内有效
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
