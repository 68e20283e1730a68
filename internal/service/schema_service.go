package service

import (
	"errors"

	"specwriter/internal/apperrors"
	"specwriter/internal/dto"
	"specwriter/internal/models"
	"specwriter/internal/repository"
	"specwriter/internal/seed"

	"gorm.io/gorm"
)

// 数据类型不变量的固定提示语
const (
	msgOptionsRequired    = "Options are required for RADIO/CHECKBOX data type"
	msgListTargetRequired = "listTargetEntity is required for LIST data type"
)

// SchemaService 表单模式服务
type SchemaService struct {
	schemaRepo *repository.SchemaRepository
}

// NewSchemaService 创建模式服务
func NewSchemaService(schemaRepo *repository.SchemaRepository) *SchemaService {
	return &SchemaService{schemaRepo: schemaRepo}
}

// GetSchemaByID 获取模式及排序后的分类和字段
func (s *SchemaService) GetSchemaByID(id string) (*models.Schema, error) {
	schema, err := s.schemaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Schema not found")
		}
		return nil, err
	}
	return schema, nil
}

// CreateCategory 创建分类，先校验所属模式存在
func (s *SchemaService) CreateCategory(req *dto.CreateCategoryRequest) (*models.SchemaCategory, error) {
	exists, err := s.schemaRepo.ExistsByID(req.SchemaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("Schema not found")
	}

	category := &models.SchemaCategory{
		SchemaID:     req.SchemaID,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.schemaRepo.CreateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory 更新分类
func (s *SchemaService) UpdateCategory(id string, req *dto.UpdateCategoryRequest) (*models.SchemaCategory, error) {
	category, err := s.schemaRepo.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Category not found")
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := s.schemaRepo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory 删除分类，字段级联删除
func (s *SchemaService) DeleteCategory(id string) error {
	if _, err := s.schemaRepo.GetCategoryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Category not found")
		}
		return err
	}
	return s.schemaRepo.DeleteCategory(id)
}

// CreateField 创建字段，写库前检查数据类型不变量
func (s *SchemaService) CreateField(req *dto.CreateFieldRequest) (*models.SchemaField, error) {
	if !models.IsValidDataType(req.DataType) {
		return nil, apperrors.NewValidation("Invalid data type: " + req.DataType)
	}

	if _, err := s.schemaRepo.GetCategoryByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Category not found")
		}
		return nil, err
	}

	field := &models.SchemaField{
		CategoryID:       req.CategoryID,
		FieldName:        req.FieldName,
		DataType:         req.DataType,
		IsRequired:       req.IsRequired,
		Options:          req.Options,
		ListTargetEntity: req.ListTargetEntity,
		PlaceholderText:  req.PlaceholderText,
		DisplayOrder:     req.DisplayOrder,
	}

	if err := validateFieldInvariants(field); err != nil {
		return nil, err
	}

	if err := s.schemaRepo.CreateField(field); err != nil {
		return nil, err
	}
	return field, nil
}

// UpdateField 更新字段
// 数据类型未变且未提交新选项时保留原有选项；改为RADIO/CHECKBOX而不带选项则与创建时同样报错
func (s *SchemaService) UpdateField(id string, req *dto.UpdateFieldRequest) (*models.SchemaField, error) {
	field, err := s.schemaRepo.GetFieldByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Field not found")
		}
		return nil, err
	}

	if req.DataType != nil {
		if !models.IsValidDataType(*req.DataType) {
			return nil, apperrors.NewValidation("Invalid data type: " + *req.DataType)
		}
		field.DataType = *req.DataType
	}
	if req.FieldName != nil {
		field.FieldName = *req.FieldName
	}
	if req.IsRequired != nil {
		field.IsRequired = *req.IsRequired
	}
	if req.Options != nil {
		field.Options = *req.Options
	}
	if req.ListTargetEntity != nil {
		field.ListTargetEntity = *req.ListTargetEntity
	}
	if req.PlaceholderText != nil {
		field.PlaceholderText = *req.PlaceholderText
	}
	if req.DisplayOrder != nil {
		field.DisplayOrder = *req.DisplayOrder
	}

	if err := validateFieldInvariants(field); err != nil {
		return nil, err
	}

	if err := s.schemaRepo.UpdateField(field); err != nil {
		return nil, err
	}
	return field, nil
}

// DeleteField 删除字段
func (s *SchemaService) DeleteField(id string) error {
	if _, err := s.schemaRepo.GetFieldByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("Field not found")
		}
		return err
	}
	return s.schemaRepo.DeleteField(id)
}

// ResetSchemaToDefault 把模式重置为默认模板
// 清空和重建在同一个事务内完成，返回重置后的模式
func (s *SchemaService) ResetSchemaToDefault(schemaID string) (*models.Schema, error) {
	exists, err := s.schemaRepo.ExistsByID(schemaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("Schema not found")
	}

	if err := s.schemaRepo.ResetSchema(schemaID, seed.DefaultCategories()); err != nil {
		return nil, err
	}

	return s.GetSchemaByID(schemaID)
}

// validateFieldInvariants 检查字段的数据类型约束
func validateFieldInvariants(field *models.SchemaField) error {
	switch field.DataType {
	case models.DataTypeRadio, models.DataTypeCheckbox:
		if len(field.Options) == 0 {
			return apperrors.NewValidation(msgOptionsRequired)
		}
	case models.DataTypeList:
		if field.ListTargetEntity == "" {
			return apperrors.NewValidation(msgListTargetRequired)
		}
	}
	return nil
}
