package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-blog/internal/api/middleware"
	"github.com/d60-Lab/social-blog/pkg/response"
)

// LikePost 点赞（幂等：重复点赞返回提示，不报错）
// @Summary 点赞帖子
// @Tags 关系链
// @Produce json
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id}/like [post]
func (h *Handler) LikePost(c *gin.Context) {
	postID, ok := uuidParam(c, "post_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	liked, err := h.relationSvc.Like(c.Request.Context(), user.UserID, postID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if liked {
		response.Success(c, "Liked successfully", nil)
		return
	}
	response.Success(c, "You have already liked this post", nil)
}

// UnlikePost 取消点赞（幂等：未点赞过返回提示，不报错）
// @Summary 取消点赞
// @Tags 关系链
// @Produce json
// @Param post_id path string true "帖子ID"
// @Success 200 {object} response.Body
// @Security BearerAuth
// @Router /api/posts/{post_id}/like [delete]
func (h *Handler) UnlikePost(c *gin.Context) {
	postID, ok := uuidParam(c, "post_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	unliked, err := h.relationSvc.Unlike(c.Request.Context(), user.UserID, postID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if unliked {
		response.Success(c, "Unliked successfully", nil)
		return
	}
	response.Success(c, "You have not liked this post", nil)
}

// FollowUser 关注（幂等；自关注 400）
// @Summary 关注用户
// @Tags 关系链
// @Produce json
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/users/{user_id}/follow [post]
func (h *Handler) FollowUser(c *gin.Context) {
	targetID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	followed, err := h.relationSvc.Follow(c.Request.Context(), user.UserID, targetID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if followed {
		response.Success(c, "Followed successfully", nil)
		return
	}
	response.Success(c, "You are already following this user", nil)
}

// UnfollowUser 取消关注（幂等）
// @Summary 取消关注
// @Tags 关系链
// @Produce json
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Body
// @Security BearerAuth
// @Router /api/users/{user_id}/follow [delete]
func (h *Handler) UnfollowUser(c *gin.Context) {
	targetID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	unfollowed, err := h.relationSvc.Unfollow(c.Request.Context(), user.UserID, targetID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if unfollowed {
		response.Success(c, "Unfollowed successfully", nil)
		return
	}
	response.Success(c, "You are not following this user", nil)
}

// FollowStatus 是否已关注（只读）
// @Summary 查询关注状态
// @Tags 关系链
// @Produce json
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Body
// @Security BearerAuth
// @Router /api/users/{user_id}/follow/status [get]
func (h *Handler) FollowStatus(c *gin.Context) {
	targetID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	isFollowing, err := h.relationSvc.IsFollowing(c.Request.Context(), user.UserID, targetID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, "Follow status retrieved successfully", gin.H{"is_following": isFollowing})
}
