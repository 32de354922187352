package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/social-blog/config"
	"github.com/d60-Lab/social-blog/internal/api"
	"github.com/d60-Lab/social-blog/internal/api/handler"
	"github.com/d60-Lab/social-blog/internal/repository"
	"github.com/d60-Lab/social-blog/internal/service"
	"github.com/d60-Lab/social-blog/pkg/cache"
	"github.com/d60-Lab/social-blog/pkg/database"
	"github.com/d60-Lab/social-blog/pkg/logger"
	"github.com/d60-Lab/social-blog/pkg/token"
	"github.com/d60-Lab/social-blog/pkg/tracing"

	_ "github.com/d60-Lab/social-blog/docs"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// @title Social Blog API
// @version 1.0
// @description 社交博客后端：注册登录、发帖、评论、点赞、关注
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := must(config.Load())

	if err := logger.Init(cfg.Log.Level, cfg.Log.Encoding); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Tracing.Enabled {
		shutdown := must(tracing.Init(ctx, cfg))
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	db := must(database.InitDB(cfg))
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		panic(err)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = must(cache.InitRedis(cfg))
		defer rdb.Close()
	}

	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	h := handler.New(
		service.NewAuthService(userRepo, tokens),
		service.NewUserService(userRepo),
		service.NewPostService(postRepo),
		service.NewCommentService(commentRepo),
		service.NewRelationshipService(likeRepo, followRepo),
	)

	router := api.NewRouter(cfg, h, userRepo, tokens, rdb)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
