package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-blog/internal/api/middleware"
	"github.com/d60-Lab/social-blog/internal/service"
	"github.com/d60-Lab/social-blog/pkg/pagination"
	"github.com/d60-Lab/social-blog/pkg/response"
)

type createPostRequest struct {
	Title      string   `json:"title" binding:"required,notblank,max=255"`
	Content    string   `json:"content" binding:"required,notblank"`
	Tags       []string `json:"tags" binding:"omitempty,dive,min=1,max=50"`
	Categories []string `json:"categories" binding:"omitempty,dive,min=1,max=50"`
}

type updatePostRequest struct {
	Title      *string  `json:"title" binding:"omitempty,max=255"`
	Content    *string  `json:"content"`
	Tags       []string `json:"tags" binding:"omitempty,dive,min=1,max=50"`
	Categories []string `json:"categories" binding:"omitempty,dive,min=1,max=50"`
}

// ListPosts 信息流
// @Summary 帖子列表（全站 / 关注流 / 点赞流）
// @Tags 帖子
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量（上限 100）" default(10)
// @Param liked query bool false "仅看我点赞过的（按点赞时间排序）"
// @Param feedType query string false "following 时仅看关注作者"
// @Success 200 {object} response.Body
// @Security BearerAuth
// @Router /api/posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	user := middleware.CurrentUser(c)
	params := pagination.ParseParams(c.Query("page"), c.Query("limit"))
	liked, _ := strconv.ParseBool(c.Query("liked"))
	feedType := c.Query("feedType")

	posts, meta, err := h.postSvc.List(c.Request.Context(), user.UserID, params, liked, feedType)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Page(c, "Posts retrieved successfully", posts, meta)
}

// CreatePost 发帖
// @Summary 创建帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Security BearerAuth
// @Router /api/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	post, err := h.postSvc.Create(c.Request.Context(), user.UserID, service.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		Categories: req.Categories,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Created(c, "Post created successfully", gin.H{"post": post})
}

// GetPost 单帖详情
// @Summary 帖子详情
// @Tags 帖子
// @Produce json
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	postID, ok := uuidParam(c, "post_id")
	if !ok {
		return
	}
	post, err := h.postSvc.Get(c.Request.Context(), postID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "Post retrieved successfully", post)
}

// UpdatePost 改帖（仅作者）
// @Summary 更新帖子
// @Tags 帖子
// @Accept json
// @Produce json
// @Param post_id path string true "帖子ID"
// @Param request body updatePostRequest true "变更字段"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id} [put]
func (h *Handler) UpdatePost(c *gin.Context) {
	postID, ok := uuidParam(c, "post_id")
	if !ok {
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	post, err := h.postSvc.Update(c.Request.Context(), user.UserID, postID, service.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		Categories: req.Categories,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "Post updated successfully", post)
}

// DeletePost 删帖（仅作者，点赞评论级联删除）
// @Summary 删除帖子
// @Tags 帖子
// @Produce json
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	postID, ok := uuidParam(c, "post_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)
	post, err := h.postSvc.Delete(c.Request.Context(), user.UserID, postID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "Post deleted successfully", post)
}
