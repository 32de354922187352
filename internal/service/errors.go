package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrFollowSelf         = errors.New("cannot follow self")
	// ErrForbidden 调用者不拥有目标资源（所有权校验统一在 service 层）
	ErrForbidden = errors.New("caller does not own the resource")
)

// NotFoundError 引用的实体不存在
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}
