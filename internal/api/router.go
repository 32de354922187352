package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/social-blog/config"
	"github.com/d60-Lab/social-blog/internal/api/handler"
	"github.com/d60-Lab/social-blog/internal/api/middleware"
	"github.com/d60-Lab/social-blog/internal/repository"
	"github.com/d60-Lab/social-blog/pkg/token"
)

// NewRouter 装配中间件与路由表。
// /api/auth 公开，/api/posts 与 /api/users 全部要求 Bearer 令牌。
func NewRouter(
	cfg *config.Config,
	h *handler.Handler,
	userRepo repository.UserRepository,
	tokens *token.Manager,
	rdb *redis.Client,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(rdb, cfg.RateLimit.RequestsPerMinute))
	}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	protected := api.Group("", middleware.Auth(userRepo, tokens))

	posts := protected.Group("/posts")
	{
		posts.GET("", h.ListPosts)
		posts.POST("", h.CreatePost)
		posts.GET("/:post_id", h.GetPost)
		posts.PUT("/:post_id", h.UpdatePost)
		posts.DELETE("/:post_id", h.DeletePost)

		posts.POST("/:post_id/like", h.LikePost)
		posts.DELETE("/:post_id/like", h.UnlikePost)

		posts.POST("/:post_id/comment", h.CreateComment)
		posts.GET("/:post_id/comment", h.ListComments)
		posts.PUT("/:post_id/comment/:comment_id", h.UpdateComment)
		posts.DELETE("/:post_id/comment/:comment_id", h.DeleteComment)
	}

	users := protected.Group("/users")
	{
		users.GET("/:user_id", h.GetProfile)
		users.PATCH("/:user_id", h.UpdateProfile)
		users.GET("/:user_id/followers", h.ListFollowers)
		users.GET("/:user_id/followed", h.ListFollowed)

		users.POST("/:user_id/follow", h.FollowUser)
		users.DELETE("/:user_id/follow", h.UnfollowUser)
		users.GET("/:user_id/follow/status", h.FollowStatus)
	}

	return r
}
