package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-blog/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, commentID string) (*model.Comment, error)
	// ListByPost 某帖评论，按创建时间倒序，带作者摘要
	ListByPost(ctx context.Context, postID string, offset, limit int) ([]*model.Comment, int64, error)
	Update(ctx context.Context, commentID string, updates map[string]any) error
	Delete(ctx context.Context, commentID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).
		Preload("Author", selectUserSummary).
		First(&comment, "comment_id = ?", commentID).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string, offset, limit int) ([]*model.Comment, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID)

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	err := base.Session(&gorm.Session{}).
		Preload("Author", selectUserSummary).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, count, nil
}

func (r *commentRepository) Update(ctx context.Context, commentID string, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentID).
		Updates(updates).Error
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	return r.db.WithContext(ctx).Delete(&model.Comment{}, "comment_id = ?", commentID).Error
}
