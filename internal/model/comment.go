package model

import "time"

// Comment 评论，归属唯一帖子与唯一作者，二者删除均级联
type Comment struct {
	CommentID string    `json:"comment_id" gorm:"column:comment_id;primaryKey;type:varchar(36)"`
	PostID    string    `json:"post_id" gorm:"type:varchar(36);index:idx_comment_post;not null"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index:idx_comment_author;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_comment_created"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comments" }
