package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/logger"
)

type addCommentRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Content  string `json:"content" binding:"required"`
	PostID   int64  `json:"postId" binding:"required"`
	ParentID *int64 `json:"parentId"`
}

// AddComment 匿名提交评论，入库即未审核
// @Summary 提交评论
// @Tags 博客
// @Accept json
// @Produce json
// @Param request body addCommentRequest true "评论内容"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /add_comment [post]
func (h *Handler) AddComment(c *gin.Context) {
	// 这个接口保持旧版的 success/comment_id 返回格式
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}

	id, err := h.comments.Submit(c.Request.Context(), service.SubmitCommentInput{
		Name:     req.Name,
		Email:    req.Email,
		Content:  req.Content,
		PostID:   req.PostID,
		ParentID: req.ParentID,
	})
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": ve.Message})
			return
		}
		logger.Error("submit comment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment_id": id})
}
