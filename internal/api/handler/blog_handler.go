package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/pkg/logger"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

// Home 公共信息流
// @Summary 首页文章列表（仅已发布）
// @Tags 博客
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router / [get]
func (h *Handler) Home(c *gin.Context) {
	posts, err := h.posts.PublicFeed(c.Request.Context())
	if err != nil {
		logger.Error("load public feed", zap.Error(err))
		response.ServiceUnavailable(c, "storage unavailable")
		return
	}
	response.Success(c, gin.H{"posts": posts})
}

// PostDetail 文章详情 + 可见评论
// @Summary 文章详情（含已审核的顶层评论）
// @Tags 博客
// @Param id path int true "文章ID"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /post/{id} [get]
func (h *Handler) PostDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "not found")
		return
	}
	post, err := h.posts.Detail(c.Request.Context(), id, h.hasAdminSession(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	comments, err := h.comments.ApprovedTopLevel(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"post": post, "comments": comments})
}
