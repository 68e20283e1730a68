package dto

// FieldValueInput 单个字段值，向导每步提交的最小单元
// 标量类型填Value，CHECKBOX填Values
type FieldValueInput struct {
	FieldID string   `json:"fieldId" binding:"required,uuid"`
	Value   string   `json:"value"`
	Values  []string `json:"values"`
}

// DeliverableInput 交付物输入
type DeliverableInput struct {
	Name        string `json:"name" binding:"required"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}

// ContractorRequirementInput 承包方要求输入
type ContractorRequirementInput struct {
	Category    string `json:"category"`
	Description string `json:"description" binding:"required"`
}

// BasicBusinessRequirementInput 基本业务要求输入
type BasicBusinessRequirementInput struct {
	Category    string `json:"category"`
	Description string `json:"description" binding:"required"`
}

// BusinessTaskInput 业务任务输入
type BusinessTaskInput struct {
	Title        string `json:"title" binding:"required"`
	DetailedSpec string `json:"detailedSpec"`
}

// SaveContentRequest 保存内容请求：内容映射加四个子实体数组
type SaveContentRequest struct {
	Values                    []FieldValueInput               `json:"values"`
	Deliverables              []DeliverableInput              `json:"deliverables"`
	ContractorRequirements    []ContractorRequirementInput    `json:"contractorRequirements"`
	BasicBusinessRequirements []BasicBusinessRequirementInput `json:"basicBusinessRequirements"`
	BusinessTasks             []BusinessTaskInput             `json:"businessTasks"`
}

// ContentResponse 内容响应
type ContentResponse struct {
	SpecificationID           string                          `json:"specificationId"`
	Status                    string                          `json:"status"`
	Values                    []FieldValueOutput              `json:"values"`
	Deliverables              []DeliverableInput              `json:"deliverables"`
	ContractorRequirements    []ContractorRequirementInput    `json:"contractorRequirements"`
	BasicBusinessRequirements []BasicBusinessRequirementInput `json:"basicBusinessRequirements"`
	BusinessTasks             []BusinessTaskInput             `json:"businessTasks"`
}

// FieldValueOutput 字段值输出
type FieldValueOutput struct {
	FieldID  string   `json:"fieldId"`
	DataType string   `json:"dataType"`
	Value    string   `json:"value,omitempty"`
	Values   []string `json:"values,omitempty"`
}
