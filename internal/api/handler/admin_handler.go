package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/repository"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/logger"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

const (
	actionToggle = "toggle"
	actionDelete = "delete"
)

// LoginForm 登录页
// @Summary 登录页数据
// @Tags 后台
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin [get]
func (h *Handler) LoginForm(c *gin.Context) {
	response.Success(c, gin.H{"section": "login"})
}

// Login 管理员登录
// @Summary 管理员登录
// @Tags 后台
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "用户名"
// @Param password formData string true "密码"
// @Success 302 {string} string "跳转后台首页"
// @Failure 401 {object} response.Response
// @Router /admin [post]
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.auth.Login(c.Request.Context(), username, password)
	if err != nil {
		// 不区分用户名错还是密码错
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid credentials")
			return
		}
		h.fail(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Dashboard 后台首页
// @Summary 汇总计数与最近内容
// @Tags 后台
// @Produce json
// @Success 200 {object} response.Response{data=service.DashboardOverview}
// @Router /admin/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	overview, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, overview)
}

// ListPosts 后台文章列表
// @Summary 全部文章（含草稿）
// @Tags 后台
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"posts": posts})
}

// MutatePosts 文章的发布翻转 / 删除
// @Summary 文章操作（toggle/delete）
// @Tags 后台
// @Accept x-www-form-urlencoded
// @Produce json
// @Param post_id formData int true "文章ID"
// @Param action formData string true "toggle 或 delete"
// @Success 200 {object} response.Response
// @Router /admin/posts [post]
func (h *Handler) MutatePosts(c *gin.Context) {
	actionErr := h.mutatePost(c)

	posts, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	data := gin.H{"posts": posts}
	if actionErr != nil {
		// 操作失败已回滚，列表照常返回并附带错误
		data["error"] = mutationErrorMessage(actionErr)
	}
	response.Success(c, data)
}

func (h *Handler) mutatePost(c *gin.Context) error {
	id, err := strconv.ParseInt(c.PostForm("post_id"), 10, 64)
	if err != nil {
		return validationMessage("invalid post_id")
	}
	switch c.PostForm("action") {
	case actionToggle:
		return h.posts.TogglePublished(c.Request.Context(), id)
	case actionDelete:
		return h.posts.Delete(c.Request.Context(), id)
	default:
		return validationMessage("unknown action")
	}
}

// ListComments 后台评论列表
// @Summary 全部评论（含未审核）
// @Tags 后台
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.comments.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"comments": comments})
}

// MutateComments 评论的审核翻转 / 删除
// @Summary 评论操作（toggle/delete）
// @Tags 后台
// @Accept x-www-form-urlencoded
// @Produce json
// @Param comment_id formData int true "评论ID"
// @Param action formData string true "toggle 或 delete"
// @Success 200 {object} response.Response
// @Router /admin/comments [post]
func (h *Handler) MutateComments(c *gin.Context) {
	actionErr := h.mutateComment(c)

	comments, err := h.comments.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	data := gin.H{"comments": comments}
	if actionErr != nil {
		data["error"] = mutationErrorMessage(actionErr)
	}
	response.Success(c, data)
}

func (h *Handler) mutateComment(c *gin.Context) error {
	id, err := strconv.ParseInt(c.PostForm("comment_id"), 10, 64)
	if err != nil {
		return validationMessage("invalid comment_id")
	}
	switch c.PostForm("action") {
	case actionToggle:
		return h.comments.ToggleApproved(c.Request.Context(), id)
	case actionDelete:
		return h.comments.Delete(c.Request.Context(), id)
	default:
		return validationMessage("unknown action")
	}
}

// NewPostForm 建稿页
// @Summary 建稿页数据
// @Tags 后台
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/new_post [get]
func (h *Handler) NewPostForm(c *gin.Context) {
	response.Success(c, gin.H{"section": "new_post"})
}

// CreatePost 新建文章
// @Summary 新建文章
// @Tags 后台
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "标题"
// @Param content formData string true "正文"
// @Param status formData string false "published 或 draft，缺省 published"
// @Success 302 {string} string "跳转文章列表"
// @Failure 400 {object} response.Response
// @Router /admin/new_post [post]
func (h *Handler) CreatePost(c *gin.Context) {
	authorID := c.GetInt64(middleware.ContextUserID)
	_, err := h.posts.Create(c.Request.Context(),
		authorID,
		c.PostForm("title"),
		c.PostForm("content"),
		c.PostForm("status"),
	)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/posts")
}

// Logout 登出：置离线、吊销会话、清 cookie
// @Summary 管理员登出
// @Tags 后台
// @Success 302 {string} string "跳转首页"
// @Router /admin/logout [get]
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil && !errors.Is(err, service.ErrSessionInvalid) {
			logger.Warn("logout", zap.Error(err))
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// validationMessage 表单层面的错误，走内联提示
func validationMessage(msg string) error {
	return &service.ValidationError{Message: msg}
}

func mutationErrorMessage(err error) string {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, repository.ErrNotFound):
		return "not found"
	default:
		logger.Error("admin mutation failed", zap.Error(err))
		return "operation failed"
	}
}
