package model

import "time"

// Category 分类词表，与 Post 多对多（post_categories，pair 唯一）
type Category struct {
	CategoryID string    `json:"category_id" gorm:"column:category_id;primaryKey;type:varchar(36)"`
	Name       string    `json:"name" gorm:"type:varchar(50);uniqueIndex:ux_category_name;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
