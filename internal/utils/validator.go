package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// IsUUID 判断字符串是否为合法UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// BindingErrorMessage 把绑定错误转为客户端可读的消息
// validator的校验错误逐字段翻译，其他错误原样返回
func BindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldErrorMessage(fieldErr))
	}
	return strings.Join(messages, "; ")
}

func fieldErrorMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "uuid":
		return field + " must be a valid UUID"
	default:
		return field + " is invalid"
	}
}
