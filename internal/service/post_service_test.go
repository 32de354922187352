package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-blog/internal/model"
	"github.com/d60-Lab/social-blog/internal/repository"
	"github.com/d60-Lab/social-blog/pkg/pagination"
)

func newPostFixture(t *testing.T) (PostService, *gorm.DB, *model.User) {
	db := setupTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))

	author := &model.User{UserID: uuid.New().String(), Name: "alice", Email: "alice@example.com", Password: "h"}
	require.NoError(t, db.Create(author).Error)
	return svc, db, author
}

func TestCreateAndGetPost(t *testing.T) {
	svc, _, author := newPostFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, author.UserID, CreatePostInput{
		Title:   "Hi",
		Content: "Hello world test",
		Tags:    []string{"go", "testing"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi", created.Title)
	assert.Equal(t, "Hello world test", created.Content)
	assert.Equal(t, author.UserID, created.UserID)
	require.NotNil(t, created.Author)
	assert.Equal(t, "alice", created.Author.Name)

	got, err := svc.Get(ctx, created.PostID)
	require.NoError(t, err)
	assert.Equal(t, created.PostID, got.PostID)

	// 空集合序列化为 []，不是 null
	assert.NotNil(t, got.Likes)
	assert.NotNil(t, got.Comments)
	assert.Empty(t, got.Likes)
	assert.Empty(t, got.Comments)
	require.Len(t, got.Tags, 2)
}

func TestGetMissingPost(t *testing.T) {
	svc, _, _ := newPostFixture(t)

	_, err := svc.Get(context.Background(), uuid.New().String())
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Post", notFound.Entity)
}

func TestUpdatePostOwnershipEnforced(t *testing.T) {
	svc, db, author := newPostFixture(t)
	ctx := context.Background()

	other := &model.User{UserID: uuid.New().String(), Name: "bob", Email: "bob@example.com", Password: "h"}
	require.NoError(t, db.Create(other).Error)

	created, err := svc.Create(ctx, author.UserID, CreatePostInput{Title: "Hi", Content: "Hello"})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(ctx, other.UserID, created.PostID, UpdatePostInput{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Delete(ctx, other.UserID, created.PostID)
	assert.ErrorIs(t, err, ErrForbidden)

	// 作者本人可以
	updated, err := svc.Update(ctx, author.UserID, created.PostID, UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Hijacked", updated.Title)
	assert.Equal(t, "Hello", updated.Content)
}

func TestDeletePost(t *testing.T) {
	svc, _, author := newPostFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, author.UserID, CreatePostInput{Title: "Hi", Content: "Hello"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, author.UserID, created.PostID)
	require.NoError(t, err)
	assert.Equal(t, created.PostID, deleted.PostID)

	_, err = svc.Get(ctx, created.PostID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListPostsPagination(t *testing.T) {
	svc, _, author := newPostFixture(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, author.UserID, CreatePostInput{
			Title:   fmt.Sprintf("post-%d", i),
			Content: "body",
		})
		require.NoError(t, err)
	}

	posts, meta, err := svc.List(ctx, author.UserID, pagination.Params{Page: 1, Limit: 2}, false, "")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.EqualValues(t, 5, meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPreviousPage)

	posts, meta, err = svc.List(ctx, author.UserID, pagination.Params{Page: 3, Limit: 2}, false, "")
	require.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPreviousPage)
}

func TestListLikedWinsOverFeedType(t *testing.T) {
	db := setupTestDB(t)
	posts := NewPostService(repository.NewPostRepository(db))
	rels := NewRelationshipService(repository.NewLikeRepository(db), repository.NewFollowRepository(db))
	ctx := context.Background()

	a := &model.User{UserID: uuid.New().String(), Name: "alice", Email: "alice@example.com", Password: "h"}
	b := &model.User{UserID: uuid.New().String(), Name: "bob", Email: "bob@example.com", Password: "h"}
	require.NoError(t, db.Create(a).Error)
	require.NoError(t, db.Create(b).Error)

	mine, err := posts.Create(ctx, a.UserID, CreatePostInput{Title: "liked", Content: "x"})
	require.NoError(t, err)
	_, err = posts.Create(ctx, b.UserID, CreatePostInput{Title: "followed", Content: "x"})
	require.NoError(t, err)

	_, err = rels.Follow(ctx, a.UserID, b.UserID)
	require.NoError(t, err)
	_, err = rels.Like(ctx, a.UserID, mine.PostID)
	require.NoError(t, err)

	// liked=true 时忽略 feedType
	got, _, err := posts.List(ctx, a.UserID, pagination.Params{Page: 1, Limit: 10}, true, FeedTypeFollowing)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "liked", got[0].Title)
}
