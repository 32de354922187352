package model

import "time"

// User 用户（password 永不序列化）
type User struct {
	UserID    string    `json:"user_id" gorm:"column:user_id;primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100);index:idx_user_name"`
	Email     string    `json:"email" gorm:"type:varchar(100);uniqueIndex:ux_user_email;not null"`
	Password  string    `json:"-" gorm:"type:text;not null"`
	Bio       string    `json:"bio,omitempty" gorm:"type:text"`
	AvatarURL string    `json:"avatar_url,omitempty" gorm:"column:avatar_url;type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
