package model

import "time"

// Post 帖子，作者唯一；删除作者时级联删除帖子
type Post struct {
	PostID    string    `json:"post_id" gorm:"column:post_id;primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index:idx_post_author;not null"`
	Title     string    `json:"title" gorm:"type:varchar(255);index:idx_post_title"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_post_created"`
	UpdatedAt time.Time `json:"updated_at"`

	Author     *User      `json:"author,omitempty" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
	Likes      []Like     `json:"likes" gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE"`
	Comments   []Comment  `json:"comments" gorm:"foreignKey:PostID;references:PostID;constraint:OnDelete:CASCADE"`
	Tags       []Tag      `json:"tags" gorm:"many2many:post_tags;foreignKey:PostID;joinForeignKey:PostID;references:TagID;joinReferences:TagID;constraint:OnDelete:CASCADE"`
	Categories []Category `json:"categories" gorm:"many2many:post_categories;foreignKey:PostID;joinForeignKey:PostID;references:CategoryID;joinReferences:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string { return "posts" }
