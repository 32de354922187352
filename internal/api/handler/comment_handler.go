package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-blog/internal/api/middleware"
	"github.com/d60-Lab/social-blog/pkg/pagination"
	"github.com/d60-Lab/social-blog/pkg/response"
)

type commentRequest struct {
	Content string `json:"content" binding:"required,notblank,max=500"`
}

// CreateComment 评论
// @Summary 发表评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param request body commentRequest true "评论内容"
// @Success 201 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id}/comment [post]
func (h *Handler) CreateComment(c *gin.Context) {
	postID, ok := uuidParam(c, "post_id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	comment, err := h.commentSvc.Create(c.Request.Context(), user.UserID, postID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, "Comment created successfully", comment)
}

// ListComments 某帖评论分页
// @Summary 评论列表
// @Tags 评论
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量（上限 100）" default(10)
// @Success 200 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id}/comment [get]
func (h *Handler) ListComments(c *gin.Context) {
	postID, ok := uuidParam(c, "post_id")
	if !ok {
		return
	}
	params := pagination.ParseParams(c.Query("page"), c.Query("limit"))

	comments, meta, err := h.commentSvc.List(c.Request.Context(), postID, params)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Page(c, "Comments retrieved successfully", comments, meta)
}

// UpdateComment 改评论（仅评论作者）
// @Summary 更新评论
// @Tags 评论
// @Accept json
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param comment_id path string true "评论ID"
// @Param request body commentRequest true "评论内容"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id}/comment/{comment_id} [put]
func (h *Handler) UpdateComment(c *gin.Context) {
	if _, ok := uuidParam(c, "post_id"); !ok {
		return
	}
	commentID, ok := uuidParam(c, "comment_id")
	if !ok {
		return
	}
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	comment, err := h.commentSvc.Update(c.Request.Context(), user.UserID, commentID, req.Content)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "Comment updated successfully", comment)
}

// DeleteComment 删评论（仅评论作者）
// @Summary 删除评论
// @Tags 评论
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param comment_id path string true "评论ID"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id}/comment/{comment_id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	if _, ok := uuidParam(c, "post_id"); !ok {
		return
	}
	commentID, ok := uuidParam(c, "comment_id")
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	comment, err := h.commentSvc.Delete(c.Request.Context(), user.UserID, commentID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "Comment deleted successfully", comment)
}
