package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-blog/internal/model"
)

// FeedFilter 信息流过滤条件。LikedBy 优先于 FollowedBy。
type FeedFilter struct {
	// FollowedBy 非空时仅返回其关注作者的帖子
	FollowedBy string
	// LikedBy 非空时仅返回其点赞过的帖子，按点赞时间倒序
	LikedBy string
}

type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// GetByID 带作者/点赞/评论/标签/分类的完整嵌套
	GetByID(ctx context.Context, postID string) (*model.Post, error)
	List(ctx context.Context, filter FeedFilter, offset, limit int) ([]*model.Post, int64, error)
	Update(ctx context.Context, postID string, updates map[string]any) error
	Delete(ctx context.Context, postID string) error
	EnsureTags(ctx context.Context, names []string) ([]model.Tag, error)
	EnsureCategories(ctx context.Context, names []string) ([]model.Category, error)
	ReplaceTags(ctx context.Context, post *model.Post, tags []model.Tag) error
	ReplaceCategories(ctx context.Context, post *model.Post, categories []model.Category) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func selectUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select("user_id", "name", "email")
}

// withFeedAssociations 信息流的嵌套形状：作者摘要、全量点赞（含点赞人摘要）、
// 全量评论（含作者摘要）、标签、分类。分页只作用于帖子本身。
func withFeedAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author", selectUserSummary).
		Preload("Likes").
		Preload("Likes.User", selectUserSummary).
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.created_at DESC") }).
		Preload("Comments.Author", selectUserSummary).
		Preload("Tags").
		Preload("Categories")
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*model.Post, error) {
	var post model.Post
	err := withFeedAssociations(r.db.WithContext(ctx)).
		First(&post, "post_id = ?", postID).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter FeedFilter, offset, limit int) ([]*model.Post, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Post{})
	order := "posts.created_at DESC"

	switch {
	case filter.LikedBy != "":
		// 点赞流按点赞时间排序，不按帖子创建时间
		base = base.Joins("JOIN likes ON likes.post_id = posts.post_id AND likes.user_id = ?", filter.LikedBy)
		order = "likes.created_at DESC"
	case filter.FollowedBy != "":
		base = base.Where("posts.user_id IN (?)",
			r.db.Model(&model.Follow{}).Select("followed_id").Where("follower_id = ?", filter.FollowedBy))
	}

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var posts []*model.Post
	err := withFeedAssociations(base.Session(&gorm.Session{})).
		Order(order).
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

func (r *postRepository) Update(ctx context.Context, postID string, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&model.Post{}).
		Where("post_id = ?", postID).
		Updates(updates).Error
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	return r.db.WithContext(ctx).Delete(&model.Post{}, "post_id = ?", postID).Error
}

// EnsureTags 按名称取词表行，缺失的创建
func (r *postRepository) EnsureTags(ctx context.Context, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	for _, name := range names {
		var tag model.Tag
		err := r.db.WithContext(ctx).
			Where("name = ?", name).
			Attrs(model.Tag{TagID: uuid.New().String(), Name: name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *postRepository) EnsureCategories(ctx context.Context, names []string) ([]model.Category, error) {
	categories := make([]model.Category, 0, len(names))
	for _, name := range names {
		var category model.Category
		err := r.db.WithContext(ctx).
			Where("name = ?", name).
			Attrs(model.Category{CategoryID: uuid.New().String(), Name: name}).
			FirstOrCreate(&category).Error
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *postRepository) ReplaceTags(ctx context.Context, post *model.Post, tags []model.Tag) error {
	return r.db.WithContext(ctx).Model(post).Association("Tags").Replace(&tags)
}

func (r *postRepository) ReplaceCategories(ctx context.Context, post *model.Post, categories []model.Category) error {
	return r.db.WithContext(ctx).Model(post).Association("Categories").Replace(&categories)
}
