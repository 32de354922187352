package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-blog/internal/model"
	"github.com/d60-Lab/social-blog/internal/repository"
	"github.com/d60-Lab/social-blog/pkg/pagination"
)

// FeedTypeFollowing 仅返回关注作者的帖子
const FeedTypeFollowing = "following"

type CreatePostInput struct {
	Title      string
	Content    string
	Tags       []string
	Categories []string
}

// UpdatePostInput 部分更新：nil 字段不变；Tags/Categories 非 nil 时整组替换
type UpdatePostInput struct {
	Title      *string
	Content    *string
	Tags       []string
	Categories []string
}

type PostService interface {
	// List 信息流。liked 优先于 feedType。
	List(ctx context.Context, callerID string, p pagination.Params, liked bool, feedType string) ([]*model.Post, pagination.Metadata, error)
	Get(ctx context.Context, postID string) (*model.Post, error)
	Create(ctx context.Context, authorID string, in CreatePostInput) (*model.Post, error)
	// Update / Delete 仅作者可操作
	Update(ctx context.Context, callerID, postID string, in UpdatePostInput) (*model.Post, error)
	Delete(ctx context.Context, callerID, postID string) (*model.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// normalizePost 嵌套集合统一为非 nil，空集序列化为 []
func normalizePost(p *model.Post) *model.Post {
	if p.Likes == nil {
		p.Likes = []model.Like{}
	}
	if p.Comments == nil {
		p.Comments = []model.Comment{}
	}
	if p.Tags == nil {
		p.Tags = []model.Tag{}
	}
	if p.Categories == nil {
		p.Categories = []model.Category{}
	}
	return p
}

func (s *postService) List(ctx context.Context, callerID string, p pagination.Params, liked bool, feedType string) ([]*model.Post, pagination.Metadata, error) {
	var filter repository.FeedFilter
	switch {
	case liked:
		filter.LikedBy = callerID
	case feedType == FeedTypeFollowing:
		filter.FollowedBy = callerID
	}

	posts, count, err := s.postRepo.List(ctx, filter, p.Offset(), p.Limit)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	for _, post := range posts {
		normalizePost(post)
	}
	return posts, pagination.NewMetadata(count, p), nil
}

func (s *postService) Get(ctx context.Context, postID string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Post")
		}
		return nil, err
	}
	return normalizePost(post), nil
}

func (s *postService) Create(ctx context.Context, authorID string, in CreatePostInput) (*model.Post, error) {
	post := &model.Post{
		PostID:  uuid.New().String(),
		UserID:  authorID,
		Title:   in.Title,
		Content: in.Content,
	}

	if len(in.Tags) > 0 {
		tags, err := s.postRepo.EnsureTags(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		post.Tags = tags
	}
	if len(in.Categories) > 0 {
		categories, err := s.postRepo.EnsureCategories(ctx, in.Categories)
		if err != nil {
			return nil, err
		}
		post.Categories = categories
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, NewNotFoundError("User")
		}
		return nil, err
	}
	return s.Get(ctx, post.PostID)
}

func (s *postService) Update(ctx context.Context, callerID, postID string, in UpdatePostInput) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Post")
		}
		return nil, err
	}
	if post.UserID != callerID {
		return nil, ErrForbidden
	}

	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if len(updates) > 0 {
		if err := s.postRepo.Update(ctx, postID, updates); err != nil {
			return nil, err
		}
	}

	if in.Tags != nil {
		tags, err := s.postRepo.EnsureTags(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.postRepo.ReplaceTags(ctx, post, tags); err != nil {
			return nil, err
		}
	}
	if in.Categories != nil {
		categories, err := s.postRepo.EnsureCategories(ctx, in.Categories)
		if err != nil {
			return nil, err
		}
		if err := s.postRepo.ReplaceCategories(ctx, post, categories); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, postID)
}

func (s *postService) Delete(ctx context.Context, callerID, postID string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Post")
		}
		return nil, err
	}
	if post.UserID != callerID {
		return nil, ErrForbidden
	}
	// 点赞、评论、join 行由外键级联删除
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return nil, err
	}
	return normalizePost(post), nil
}
