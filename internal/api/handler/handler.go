package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/logger"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

// Handler 汇集全部 HTTP 入口
type Handler struct {
	auth       service.AuthService
	posts      service.PostService
	comments   service.CommentService
	dashboard  service.DashboardService
	sessionTTL time.Duration
}

func New(auth service.AuthService, posts service.PostService, comments service.CommentService, dashboard service.DashboardService, sessionTTL time.Duration) *Handler {
	return &Handler{auth: auth, posts: posts, comments: comments, dashboard: dashboard, sessionTTL: sessionTTL}
}

// Health 存活探针
// @Summary 健康检查
// @Tags 运维
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// fail 把服务层错误映射成 HTTP 响应
func (h *Handler) fail(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		response.BadRequest(c, ve.Message)
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid credentials")
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		response.InternalError(c, err)
	}
}

// hasAdminSession 静默探测请求是否带有效管理员会话（公共路由用）
func (h *Handler) hasAdminSession(c *gin.Context) bool {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		return false
	}
	_, err = h.auth.CurrentUser(c.Request.Context(), token)
	return err == nil
}
