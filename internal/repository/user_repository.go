package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/social-blog/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, userID string, updates map[string]any) error
	// ListFollowers 关注 userID 的用户，按关注时间倒序
	ListFollowers(ctx context.Context, userID string, offset, limit int) ([]*model.User, error)
	// ListFollowed userID 关注的用户，按关注时间倒序
	ListFollowed(ctx context.Context, userID string, offset, limit int) ([]*model.User, error)
	Delete(ctx context.Context, userID string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update 部分更新，仅修改传入的列
func (r *userRepository) Update(ctx context.Context, userID string, updates map[string]any) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}

func (r *userRepository) ListFollowers(ctx context.Context, userID string, offset, limit int) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Select("users.user_id", "users.name", "users.email", "users.bio", "users.avatar_url", "users.created_at", "users.updated_at").
		Joins("JOIN follows ON follows.follower_id = users.user_id").
		Where("follows.followed_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepository) ListFollowed(ctx context.Context, userID string, offset, limit int) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Select("users.user_id", "users.name", "users.email", "users.bio", "users.avatar_url", "users.created_at", "users.updated_at").
		Joins("JOIN follows ON follows.followed_id = users.user_id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepository) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "user_id = ?", userID).Error
}
