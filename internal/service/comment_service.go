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

type CommentService interface {
	Create(ctx context.Context, authorID, postID, content string) (*model.Comment, error)
	List(ctx context.Context, postID string, p pagination.Params) ([]*model.Comment, pagination.Metadata, error)
	// Update / Delete 仅评论作者可操作
	Update(ctx context.Context, callerID, commentID, content string) (*model.Comment, error)
	Delete(ctx context.Context, callerID, commentID string) (*model.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

func (s *commentService) Create(ctx context.Context, authorID, postID, content string) (*model.Comment, error) {
	comment := &model.Comment{
		CommentID: uuid.New().String(),
		PostID:    postID,
		UserID:    authorID,
		Content:   content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		// 帖子不存在时外键拒绝写入
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, NewNotFoundError("Post")
		}
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.CommentID)
}

func (s *commentService) List(ctx context.Context, postID string, p pagination.Params) ([]*model.Comment, pagination.Metadata, error) {
	comments, count, err := s.commentRepo.ListByPost(ctx, postID, p.Offset(), p.Limit)
	if err != nil {
		return nil, pagination.Metadata{}, err
	}
	return comments, pagination.NewMetadata(count, p), nil
}

func (s *commentService) Update(ctx context.Context, callerID, commentID, content string) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Comment")
		}
		return nil, err
	}
	if comment.UserID != callerID {
		return nil, ErrForbidden
	}

	if err := s.commentRepo.Update(ctx, commentID, map[string]any{"content": content}); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *commentService) Delete(ctx context.Context, callerID, commentID string) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Comment")
		}
		return nil, err
	}
	if comment.UserID != callerID {
		return nil, ErrForbidden
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}
	return comment, nil
}
