package apperrors

import (
	"errors"
	"net/http"
)

// AppError 业务错误，携带HTTP状态码和错误码
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	return e.Message
}

// NewValidation 400 输入校验错误
func NewValidation(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: "validation_error", Message: message}
}

// NewUnauthorized 401 未认证
func NewUnauthorized(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: "unauthorized", Message: message}
}

// NewForbidden 403 已认证但无权限
func NewForbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Code: "forbidden", Message: message}
}

// NewNotFound 404 资源不存在
func NewNotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: "not_found", Message: message}
}

// NewConflict 409 唯一约束冲突
func NewConflict(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Code: "conflict", Message: message}
}

// NewInternal 500 内部错误
func NewInternal(message string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: "internal_server_error", Message: message}
}

// AsAppError 从错误链中提取AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound 判断是否为404错误
func IsNotFound(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Status == http.StatusNotFound
}

// IsForbidden 判断是否为403错误
func IsForbidden(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Status == http.StatusForbidden
}
