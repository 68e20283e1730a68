package utils

import (
	"net/http"

	"specwriter/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// Response 统一响应格式
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody 错误响应体
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PageResult 分页结果
type PageResult struct {
	Items      interface{} `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// CreatedResponse 201成功响应
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, Response{Success: false, Error: &ErrorBody{Code: code, Message: message}})
}

// BadRequest 400错误
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "validation_error", message)
}

// Unauthorized 401错误
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, "unauthorized", message)
}

// Forbidden 403错误
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, "forbidden", message)
}

// NotFound 404错误
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "not_found", message)
}

// TooManyRequests 429错误
func TooManyRequests(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusTooManyRequests, "too_many_requests", message)
}

// InternalError 500错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "internal_server_error", message)
}

// HandleError 将服务层错误映射为HTTP响应
// 未知错误在发布模式下不回显内部信息
func HandleError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		ErrorResponse(c, appErr.Status, appErr.Code, appErr.Message)
		return
	}

	message := err.Error()
	if gin.Mode() == gin.ReleaseMode {
		message = "Internal server error"
	}
	InternalError(c, message)
}
