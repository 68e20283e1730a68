package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 字段数据类型常量
const (
	DataTypeText     = "TEXT"
	DataTypeTextarea = "TEXTAREA"
	DataTypeDate     = "DATE"
	DataTypeRadio    = "RADIO"
	DataTypeCheckbox = "CHECKBOX"
	DataTypeList     = "LIST"
)

// DataTypes 全部合法的字段数据类型
var DataTypes = []string{
	DataTypeText,
	DataTypeTextarea,
	DataTypeDate,
	DataTypeRadio,
	DataTypeCheckbox,
	DataTypeList,
}

// IsValidDataType 判断数据类型是否合法
func IsValidDataType(dataType string) bool {
	for _, t := range DataTypes {
		if t == dataType {
			return true
		}
	}
	return false
}

// Schema 表单模式，按惯例只有一个默认模式
type Schema struct {
	ID        string `gorm:"type:char(36);primarykey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	IsDefault bool   `gorm:"default:false" json:"isDefault"`

	// 关联
	Categories []SchemaCategory `gorm:"foreignKey:SchemaID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}

// TableName 指定表名
func (Schema) TableName() string {
	return "schemas"
}

// BeforeCreate 生成主键
func (s *Schema) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SchemaCategory 模式分类，按DisplayOrder升序展示
type SchemaCategory struct {
	ID           string `gorm:"type:char(36);primarykey" json:"id"`
	SchemaID     string `gorm:"type:char(36);index;not null" json:"schemaId"`
	Name         string `gorm:"size:255;not null" json:"name"`
	Description  string `gorm:"type:text" json:"description,omitempty"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`

	// 关联
	Fields []SchemaField `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"fields,omitempty"`
}

// TableName 指定表名
func (SchemaCategory) TableName() string {
	return "schema_categories"
}

// BeforeCreate 生成主键
func (c *SchemaCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// SchemaField 模式字段
// 不变量：RADIO/CHECKBOX 必须有 Options；LIST 必须有 ListTargetEntity
type SchemaField struct {
	ID               string   `gorm:"type:char(36);primarykey" json:"id"`
	CategoryID       string   `gorm:"type:char(36);index;not null" json:"categoryId"`
	FieldName        string   `gorm:"size:255;not null" json:"fieldName"`
	DataType         string   `gorm:"size:20;not null" json:"dataType"`
	IsRequired       bool     `gorm:"default:false" json:"isRequired"`
	Options          []string `gorm:"serializer:json" json:"options,omitempty"`
	ListTargetEntity string   `gorm:"size:100" json:"listTargetEntity,omitempty"`
	PlaceholderText  string   `gorm:"size:255" json:"placeholderText,omitempty"`
	DisplayOrder     int      `gorm:"not null;default:0" json:"displayOrder"`
}

// TableName 指定表名
func (SchemaField) TableName() string {
	return "schema_fields"
}

// BeforeCreate 生成主键
func (f *SchemaField) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// HasOption 判断选项是否在字段的选项列表中
func (f *SchemaField) HasOption(value string) bool {
	for _, o := range f.Options {
		if o == value {
			return true
		}
	}
	return false
}
