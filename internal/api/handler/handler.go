package handler

import (
	"errors"
	"fmt"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/social-blog/internal/api/middleware"
	"github.com/d60-Lab/social-blog/internal/service"
	"github.com/d60-Lab/social-blog/pkg/logger"
	"github.com/d60-Lab/social-blog/pkg/response"
)

type Handler struct {
	authSvc     service.AuthService
	userSvc     service.UserService
	postSvc     service.PostService
	commentSvc  service.CommentService
	relationSvc service.RelationshipService
}

func New(
	authSvc service.AuthService,
	userSvc service.UserService,
	postSvc service.PostService,
	commentSvc service.CommentService,
	relationSvc service.RelationshipService,
) *Handler {
	return &Handler{
		authSvc:     authSvc,
		userSvc:     userSvc,
		postSvc:     postSvc,
		commentSvc:  commentSvc,
		relationSvc: relationSvc,
	}
}

// handleError 错误种类 → HTTP 状态的唯一翻译点
func (h *Handler) handleError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	switch {
	case errors.As(err, &notFound):
		response.NotFound(c, notFound.Error())
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, "User with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, service.ErrFollowSelf):
		response.BadRequest(c, "You cannot follow yourself")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, "You do not have permission to perform this action")
	default:
		logger.Error("unhandled error",
			zap.String("request_id", middleware.RequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		response.InternalError(c)
	}
}

// uuidParam 路径参数必须是 UUID，否则 400
func uuidParam(c *gin.Context, name string) (string, bool) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		response.BadRequest(c, fmt.Sprintf("%s must be a valid UUID", name))
		return "", false
	}
	return v, true
}
