package dto

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	SchemaID     string `json:"schemaId" binding:"required,uuid"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

// UpdateCategoryRequest 更新分类请求，nil字段表示不修改
type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"displayOrder"`
}

// CreateFieldRequest 创建字段请求
type CreateFieldRequest struct {
	CategoryID       string   `json:"categoryId" binding:"required,uuid"`
	FieldName        string   `json:"fieldName" binding:"required"`
	DataType         string   `json:"dataType" binding:"required"`
	IsRequired       bool     `json:"isRequired"`
	Options          []string `json:"options"`
	ListTargetEntity string   `json:"listTargetEntity"`
	PlaceholderText  string   `json:"placeholderText"`
	DisplayOrder     int      `json:"displayOrder"`
}

// UpdateFieldRequest 更新字段请求，nil字段表示不修改
type UpdateFieldRequest struct {
	FieldName        *string   `json:"fieldName"`
	DataType         *string   `json:"dataType"`
	IsRequired       *bool     `json:"isRequired"`
	Options          *[]string `json:"options"`
	ListTargetEntity *string   `json:"listTargetEntity"`
	PlaceholderText  *string   `json:"placeholderText"`
	DisplayOrder     *int      `json:"displayOrder"`
}

// ResetSchemaRequest 重置模式请求
type ResetSchemaRequest struct {
	SchemaID string `json:"schemaId" binding:"required,uuid"`
}
