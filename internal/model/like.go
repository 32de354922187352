package model

import "time"

// Like 点赞关系（user 点赞 post）
type Like struct {
	LikeID string `json:"like_id" gorm:"column:like_id;primaryKey;type:varchar(36)"`
	UserID string `json:"user_id" gorm:"type:varchar(36);index:idx_like_pair,unique;not null"`
	PostID string `json:"post_id" gorm:"type:varchar(36);index:idx_like_pair,unique;index:idx_like_post;not null"`
	// 复合唯一键，同一用户对同一帖子至多一条
	// idx_like_pair = (user_id, post_id)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string { return "likes" }
