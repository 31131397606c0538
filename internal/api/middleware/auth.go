package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/service"
)

const (
	// SessionCookie 会话 cookie 名
	SessionCookie = "session"
	// ContextUserID 校验通过后写入 gin context 的用户 id 键
	ContextUserID = "user_id"
)

// AdminAuth 后台路由的会话门禁：没有有效会话就 302 回登录页
func AdminAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		userID, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
