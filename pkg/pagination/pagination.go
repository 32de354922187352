package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params 分页入参。page 从 1 开始。
type Params struct {
	Page  int
	Limit int
}

// ParseParams 解析 page/limit 查询参数。
// 非法或缺失的值回落到默认值，limit 上限 100，不报错。
func ParseParams(pageStr, limitStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// Metadata 分页元信息，随列表响应返回。
type Metadata struct {
	TotalCount      int64 `json:"totalCount"`
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewMetadata 由总数和入参计算元信息。
// 超出范围的 page 不报错，hasNextPage 置 false 即可。
func NewMetadata(count int64, p Params) Metadata {
	totalPages := int((count + int64(p.Limit) - 1) / int64(p.Limit))
	return Metadata{
		TotalCount:      count,
		CurrentPage:     p.Page,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}
