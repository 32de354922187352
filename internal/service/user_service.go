package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-blog/internal/model"
	"github.com/d60-Lab/social-blog/internal/repository"
)

// UpdateProfileInput 部分更新：nil 字段不变
type UpdateProfileInput struct {
	Name      *string
	Email     *string
	Bio       *string
	AvatarURL *string
	Password  *string
}

type UserService interface {
	Get(ctx context.Context, userID string) (*model.User, error)
	// UpdateProfile 仅允许本人修改
	UpdateProfile(ctx context.Context, callerID, userID string, in UpdateProfileInput) (*model.User, error)
	ListFollowers(ctx context.Context, userID string, offset, limit int) ([]*model.User, error)
	ListFollowed(ctx context.Context, userID string, offset, limit int) ([]*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Get(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("User")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, callerID, userID string, in UpdateProfileInput) (*model.User, error) {
	if callerID != userID {
		return nil, ErrForbidden
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("User")
		}
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.AvatarURL != nil {
		updates["avatar_url"] = *in.AvatarURL
	}
	if in.Password != nil {
		// 密码变更在此显式重哈希
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, userID, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrEmailTaken
			}
			return nil, err
		}
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) ListFollowers(ctx context.Context, userID string, offset, limit int) ([]*model.User, error) {
	if limit < 1 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListFollowers(ctx, userID, offset, limit)
}

func (s *userService) ListFollowed(ctx context.Context, userID string, offset, limit int) ([]*model.User, error) {
	if limit < 1 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListFollowed(ctx, userID, offset, limit)
}
