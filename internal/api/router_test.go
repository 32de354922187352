package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/social-blog/config"
	"github.com/d60-Lab/social-blog/internal/api/handler"
	"github.com/d60-Lab/social-blog/internal/model"
	"github.com/d60-Lab/social-blog/internal/repository"
	"github.com/d60-Lab/social-blog/internal/service"
	"github.com/d60-Lab/social-blog/pkg/pagination"
	"github.com/d60-Lab/social-blog/pkg/token"
)

type envelope struct {
	Message    string               `json:"message"`
	Data       json.RawMessage      `json:"data"`
	Pagination *pagination.Metadata `json:"pagination"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Post{}, &model.Comment{},
		&model.Like{}, &model.Follow{}, &model.Tag{}, &model.Category{},
	))

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiresIn = time.Hour

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
	return NewRouter(cfg, h, userRepo, tokens, nil)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, bearer string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func register(t *testing.T, r *gin.Engine, name, email string) (userID, bearer string) {
	t.Helper()
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		User  model.User `json:"user"`
		Token string     `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.User.UserID)
	require.NotEmpty(t, data.Token)
	return data.User.UserID, data.Token
}

func TestRegisterLoginAndFollowingFeed(t *testing.T) {
	r := newTestServer(t)

	aID, aToken := register(t, r, "A", "a@example.com")

	// 登录取到的令牌同样可用
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "a@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User logged in successfully", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/api/posts", aToken, gin.H{
		"title": "Hi", "content": "Hello world test",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Post created successfully", env.Message)

	var created struct {
		Post model.Post `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Hi", created.Post.Title)
	assert.Equal(t, aID, created.Post.UserID)

	_, bToken := register(t, r, "B", "b@example.com")

	w, env = doJSON(t, r, http.MethodPost, "/api/users/"+aID+"/follow", bToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Followed successfully", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/posts?feedType=following", bToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Posts retrieved successfully", env.Message)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 1, env.Pagination.TotalCount)

	var feed []model.Post
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "Hi", feed[0].Title)
	require.NotNil(t, feed[0].Author)
	assert.Equal(t, "A", feed[0].Author.Name)
}

func TestAuthRequired(t *testing.T) {
	r := newTestServer(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/posts", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token provided", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/posts", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", env.Message)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	r := newTestServer(t)

	register(t, r, "A", "a@example.com")
	w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "A2", "email": "a@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "User with this email already exists", env.Message)
}

func TestIdempotentLikeAndFollowMessages(t *testing.T) {
	r := newTestServer(t)

	aID, aToken := register(t, r, "A", "a@example.com")
	_, bToken := register(t, r, "B", "b@example.com")

	w, env := doJSON(t, r, http.MethodPost, "/api/posts", aToken, gin.H{
		"title": "Hi", "content": "Hello",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Post model.Post `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	postID := created.Post.PostID

	// 重复点赞 / 取消从未点过的赞都是 200，只换文案
	w, env = doJSON(t, r, http.MethodDelete, "/api/posts/"+postID+"/like", bToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You have not liked this post", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/api/posts/"+postID+"/like", bToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Liked successfully", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/api/posts/"+postID+"/like", bToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You have already liked this post", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/api/users/"+aID+"/follow", bToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Followed successfully", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/api/users/"+aID+"/follow", bToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You are already following this user", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/users/"+aID+"/follow/status", bToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var status struct {
		IsFollowing bool `json:"is_following"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.IsFollowing)

	w, env = doJSON(t, r, http.MethodDelete, "/api/users/"+aID+"/follow", bToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Unfollowed successfully", env.Message)

	w, env = doJSON(t, r, http.MethodDelete, "/api/users/"+aID+"/follow", bToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "You are not following this user", env.Message)
}

func TestFollowSelfRejected(t *testing.T) {
	r := newTestServer(t)

	aID, aToken := register(t, r, "A", "a@example.com")
	w, env := doJSON(t, r, http.MethodPost, "/api/users/"+aID+"/follow", aToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "You cannot follow yourself", env.Message)
}

func TestOwnershipForbidden(t *testing.T) {
	r := newTestServer(t)

	_, aToken := register(t, r, "A", "a@example.com")
	_, bToken := register(t, r, "B", "b@example.com")

	_, env := doJSON(t, r, http.MethodPost, "/api/posts", aToken, gin.H{
		"title": "Hi", "content": "Hello",
	})
	var created struct {
		Post model.Post `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	w, env := doJSON(t, r, http.MethodDelete, "/api/posts/"+created.Post.PostID, bToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You do not have permission to perform this action", env.Message)
}

func TestPostNotFoundAndBadUUID(t *testing.T) {
	r := newTestServer(t)

	_, aToken := register(t, r, "A", "a@example.com")

	w, env := doJSON(t, r, http.MethodGet, "/api/posts/17070e96-77f3-4a1e-a397-ce8b14302e45", aToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", env.Message)

	w, env = doJSON(t, r, http.MethodGet, "/api/posts/not-a-uuid", aToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "post_id must be a valid UUID", env.Message)
}

func TestCommentFlow(t *testing.T) {
	r := newTestServer(t)

	_, aToken := register(t, r, "A", "a@example.com")
	_, bToken := register(t, r, "B", "b@example.com")

	_, env := doJSON(t, r, http.MethodPost, "/api/posts", aToken, gin.H{
		"title": "Hi", "content": "Hello",
	})
	var created struct {
		Post model.Post `json:"post"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	postID := created.Post.PostID

	w, env := doJSON(t, r, http.MethodPost, "/api/posts/"+postID+"/comment", bToken, gin.H{
		"content": "first!",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Comment created successfully", env.Message)
	var comment model.Comment
	require.NoError(t, json.Unmarshal(env.Data, &comment))

	w, env = doJSON(t, r, http.MethodGet, "/api/posts/"+postID+"/comment", aToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 1, env.Pagination.TotalCount)

	// 只有评论作者能改
	w, env = doJSON(t, r, http.MethodPut, "/api/posts/"+postID+"/comment/"+comment.CommentID, aToken, gin.H{
		"content": "edited",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env = doJSON(t, r, http.MethodPut, "/api/posts/"+postID+"/comment/"+comment.CommentID, bToken, gin.H{
		"content": "edited",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Comment updated successfully", env.Message)
}
