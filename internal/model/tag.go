package model

import "time"

// Tag 标签词表，与 Post 多对多（post_tags，pair 唯一）
type Tag struct {
	TagID     string    `json:"tag_id" gorm:"column:tag_id;primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(50);uniqueIndex:ux_tag_name;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tag) TableName() string { return "tags" }
