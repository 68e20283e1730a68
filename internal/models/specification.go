package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 规格书状态常量
const (
	StatusDraft  = "DRAFT"
	StatusReview = "REVIEW"
	StatusSaved  = "SAVED"
)

// IsValidStatus 判断状态是否合法
func IsValidStatus(status string) bool {
	return status == StatusDraft || status == StatusReview || status == StatusSaved
}

// LIST字段的子实体目标名称
const (
	ListTargetDeliverable              = "Deliverable"
	ListTargetContractorRequirement    = "ContractorRequirement"
	ListTargetBasicBusinessRequirement = "BasicBusinessRequirement"
	ListTargetBusinessTask             = "BusinessTask"
)

// Specification 规格书文档，仅作者可读写删
type Specification struct {
	ID        string    `gorm:"type:char(36);primarykey" json:"id"`
	AuthorID  string    `gorm:"type:char(36);index;not null" json:"authorId"`
	SchemaID  string    `gorm:"type:char(36);not null" json:"schemaId"`
	Title     string    `gorm:"size:255" json:"title,omitempty"`
	Status    string    `gorm:"size:20;not null;default:DRAFT" json:"status"`
	Version   string    `gorm:"size:20;not null;default:1.0" json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 关联
	Author                    *User                      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	ContentValues             []SpecContentValue         `gorm:"foreignKey:SpecificationID;constraint:OnDelete:CASCADE" json:"contentValues,omitempty"`
	Deliverables              []Deliverable              `gorm:"foreignKey:SpecificationID;constraint:OnDelete:CASCADE" json:"deliverables,omitempty"`
	ContractorRequirements    []ContractorRequirement    `gorm:"foreignKey:SpecificationID;constraint:OnDelete:CASCADE" json:"contractorRequirements,omitempty"`
	BasicBusinessRequirements []BasicBusinessRequirement `gorm:"foreignKey:SpecificationID;constraint:OnDelete:CASCADE" json:"basicBusinessRequirements,omitempty"`
	BusinessTasks             []BusinessTask             `gorm:"foreignKey:SpecificationID;constraint:OnDelete:CASCADE" json:"businessTasks,omitempty"`
}

// TableName 指定表名
func (Specification) TableName() string {
	return "specifications"
}

// BeforeCreate 生成主键
func (s *Specification) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SpecContentValue EAV内容值，每个非LIST字段一行
// 按DataType只填充TextValue和OptionValues其中之一
type SpecContentValue struct {
	ID              string   `gorm:"type:char(36);primarykey" json:"id"`
	SpecificationID string   `gorm:"type:char(36);index;not null" json:"specificationId"`
	FieldID         string   `gorm:"type:char(36);index;not null" json:"fieldId"`
	DataType        string   `gorm:"size:20;not null" json:"dataType"`
	TextValue       string   `gorm:"type:text" json:"textValue,omitempty"`
	OptionValues    []string `gorm:"serializer:json" json:"optionValues,omitempty"`
}

// TableName 指定表名
func (SpecContentValue) TableName() string {
	return "spec_content_values"
}

// BeforeCreate 生成主键
func (v *SpecContentValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Deliverable 交付物子实体
type Deliverable struct {
	ID              string `gorm:"type:char(36);primarykey" json:"id"`
	SpecificationID string `gorm:"type:char(36);index;not null" json:"specificationId"`
	Name            string `gorm:"size:255;not null" json:"name"`
	Quantity        int    `gorm:"default:1" json:"quantity"`
	Description     string `gorm:"type:text" json:"description,omitempty"`
}

// TableName 指定表名
func (Deliverable) TableName() string {
	return "deliverables"
}

// BeforeCreate 生成主键
func (d *Deliverable) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// ContractorRequirement 承包方要求子实体
type ContractorRequirement struct {
	ID              string `gorm:"type:char(36);primarykey" json:"id"`
	SpecificationID string `gorm:"type:char(36);index;not null" json:"specificationId"`
	Category        string `gorm:"size:255" json:"category,omitempty"`
	Description     string `gorm:"type:text;not null" json:"description"`
}

// TableName 指定表名
func (ContractorRequirement) TableName() string {
	return "contractor_requirements"
}

// BeforeCreate 生成主键
func (c *ContractorRequirement) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// BasicBusinessRequirement 基本业务要求子实体
type BasicBusinessRequirement struct {
	ID              string `gorm:"type:char(36);primarykey" json:"id"`
	SpecificationID string `gorm:"type:char(36);index;not null" json:"specificationId"`
	Category        string `gorm:"size:255" json:"category,omitempty"`
	Description     string `gorm:"type:text;not null" json:"description"`
}

// TableName 指定表名
func (BasicBusinessRequirement) TableName() string {
	return "basic_business_requirements"
}

// BeforeCreate 生成主键
func (b *BasicBusinessRequirement) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BusinessTask 业务任务子实体
type BusinessTask struct {
	ID              string `gorm:"type:char(36);primarykey" json:"id"`
	SpecificationID string `gorm:"type:char(36);index;not null" json:"specificationId"`
	Title           string `gorm:"size:255;not null" json:"title"`
	DetailedSpec    string `gorm:"type:text" json:"detailedSpec,omitempty"`
}

// TableName 指定表名
func (BusinessTask) TableName() string {
	return "business_tasks"
}

// BeforeCreate 生成主键
func (t *BusinessTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
