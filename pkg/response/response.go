package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/social-blog/pkg/pagination"
)

// Body 统一响应信封 {message, data?, pagination?}
type Body struct {
	Message    string               `json:"message"`
	Data       any                  `json:"data,omitempty"`
	Pagination *pagination.Metadata `json:"pagination,omitempty"`
}

func Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Body{Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Body{Message: message, Data: data})
}

// Page 带分页元信息的列表响应
func Page(c *gin.Context, message string, data any, meta pagination.Metadata) {
	c.JSON(http.StatusOK, Body{Message: message, Data: data, Pagination: &meta})
}

func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Body{Message: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Body{Message: message})
}

func Forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Body{Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Body{Message: message})
}

func Conflict(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusConflict, Body{Message: message})
}

func TooManyRequests(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Body{Message: message})
}

func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Body{Message: "Internal server error"})
}
