package model

import (
	"time"
)

// Follow 关注关系（follower 关注 followed）
type Follow struct {
	FollowID   string `json:"follow_id" gorm:"column:follow_id;primaryKey;type:varchar(36)"`
	FollowerID string `json:"follower_id" gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	FollowedID string `json:"followed_id" gorm:"type:varchar(36);index:idx_follow_followed;index:idx_follow_pair,unique;not null"`
	// 复合唯一键，避免重复关注
	// idx_follow_pair = (follower_id, followed_id)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Follower *User `json:"follower,omitempty" gorm:"foreignKey:FollowerID;references:UserID;constraint:OnDelete:CASCADE"`
	Followed *User `json:"followed,omitempty" gorm:"foreignKey:FollowedID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (Follow) TableName() string { return "follows" }
