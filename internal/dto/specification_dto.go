package dto

import "specwriter/internal/models"

// ListSpecificationsQuery 规格书列表查询参数
type ListSpecificationsQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Status string `form:"status"`
	Sort   string `form:"sort"`
}

// CreateSpecificationRequest 创建规格书请求
// SchemaID为空时使用配置的默认模式
type CreateSpecificationRequest struct {
	SchemaID string `json:"schemaId" binding:"omitempty,uuid"`
}

// UpdateSpecificationRequest 更新规格书请求
type UpdateSpecificationRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

// SpecificationDetail 规格书详情
type SpecificationDetail struct {
	models.Specification
	Author *AuthorInfo `json:"author,omitempty"`
}
