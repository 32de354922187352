package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-blog/internal/repository"
)

// RelationshipService 关系链（点赞边 + 关注边）。
// 所有写操作幂等：重复写/删不存在的边不是错误，返回 applied=false。
type RelationshipService interface {
	// Like applied=false 表示已点赞过
	Like(ctx context.Context, userID, postID string) (bool, error)
	// Unlike applied=false 表示本来就没点赞
	Unlike(ctx context.Context, userID, postID string) (bool, error)
	// Follow applied=false 表示已关注；自关注返回 ErrFollowSelf
	Follow(ctx context.Context, followerID, followedID string) (bool, error)
	Unfollow(ctx context.Context, followerID, followedID string) (bool, error)
	// IsFollowing 纯存在性查询，无副作用
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
}

type relationshipService struct {
	likeRepo   repository.LikeRepository
	followRepo repository.FollowRepository
}

func NewRelationshipService(likeRepo repository.LikeRepository, followRepo repository.FollowRepository) RelationshipService {
	return &relationshipService{likeRepo: likeRepo, followRepo: followRepo}
}

func (s *relationshipService) Like(ctx context.Context, userID, postID string) (bool, error) {
	inserted, err := s.likeRepo.Insert(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return false, NewNotFoundError("Post")
		}
		// 并发下唯一键冲突等价于"已点赞"
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return inserted, nil
}

func (s *relationshipService) Unlike(ctx context.Context, userID, postID string) (bool, error) {
	return s.likeRepo.Remove(ctx, userID, postID)
}

func (s *relationshipService) Follow(ctx context.Context, followerID, followedID string) (bool, error) {
	if followerID == followedID {
		return false, ErrFollowSelf
	}
	inserted, err := s.followRepo.Insert(ctx, followerID, followedID)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return false, NewNotFoundError("User")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return inserted, nil
}

func (s *relationshipService) Unfollow(ctx context.Context, followerID, followedID string) (bool, error) {
	return s.followRepo.Remove(ctx, followerID, followedID)
}

func (s *relationshipService) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followedID)
}
