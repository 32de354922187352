package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-blog/internal/api/middleware"
	"github.com/d60-Lab/social-blog/internal/service"
	"github.com/d60-Lab/social-blog/pkg/response"
)

type updateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=3,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=100"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}

// GetProfile 用户资料
// @Summary 用户资料
// @Tags 用户
// @Produce json
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/users/{user_id} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userSvc.Get(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "User profile retrieved successfully", user)
}

// UpdateProfile 改资料（仅本人）
// @Summary 更新用户资料
// @Tags 用户
// @Accept json
// @Produce json
// @Param user_id path string true "用户ID"
// @Param request body updateUserRequest true "变更字段"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/users/{user_id} [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	caller := middleware.CurrentUser(c)
	user, err := h.userSvc.UpdateProfile(c.Request.Context(), caller.UserID, userID, service.UpdateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
		Password:  req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "User profile updated successfully", user)
}

// ListFollowers 粉丝列表
// @Summary 粉丝列表（按关注时间倒序）
// @Tags 用户
// @Produce json
// @Param user_id path string true "用户ID"
// @Param limit query int false "数量" default(10)
// @Param offset query int false "偏移" default(0)
// @Success 200 {object} response.Body
// @Security BearerAuth
// @Router /api/users/{user_id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	followers, err := h.userSvc.ListFollowers(c.Request.Context(), userID, offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "Followers retrieved successfully", followers)
}

// ListFollowed 关注列表
// @Summary 关注列表（按关注时间倒序）
// @Tags 用户
// @Produce json
// @Param user_id path string true "用户ID"
// @Param limit query int false "数量" default(10)
// @Param offset query int false "偏移" default(0)
// @Success 200 {object} response.Body
// @Security BearerAuth
// @Router /api/users/{user_id}/followed [get]
func (h *Handler) ListFollowed(c *gin.Context) {
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	followed, err := h.userSvc.ListFollowed(c.Request.Context(), userID, offset, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "Followed users retrieved successfully", followed)
}
