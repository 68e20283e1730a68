package repository

import (
	"specwriter/internal/models"

	"gorm.io/gorm"
)

// SchemaRepository 表单模式数据访问层
type SchemaRepository struct {
	db *gorm.DB
}

// NewSchemaRepository 创建模式Repository
func NewSchemaRepository(db *gorm.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

// GetByID 获取模式，分类和字段均按DisplayOrder升序
func (r *SchemaRepository) GetByID(id string) (*models.Schema, error) {
	var schema models.Schema
	err := r.db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Categories.Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		First(&schema, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schema, nil
}

// ExistsByID 检查模式是否存在
func (r *SchemaRepository) ExistsByID(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Schema{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateSchema 创建模式
func (r *SchemaRepository) CreateSchema(schema *models.Schema) error {
	return r.db.Create(schema).Error
}

// CreateCategory 创建分类
func (r *SchemaRepository) CreateCategory(category *models.SchemaCategory) error {
	return r.db.Create(category).Error
}

// GetCategoryByID 根据ID获取分类
func (r *SchemaRepository) GetCategoryByID(id string) (*models.SchemaCategory, error) {
	var category models.SchemaCategory
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory 更新分类
func (r *SchemaRepository) UpdateCategory(category *models.SchemaCategory) error {
	return r.db.Save(category).Error
}

// DeleteCategory 事务内删除分类及其全部字段
// sqlite的外键开关随连接而变，级联删除显式执行
func (r *SchemaRepository) DeleteCategory(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.SchemaField{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SchemaCategory{}, "id = ?", id).Error
	})
}

// CreateField 创建字段
func (r *SchemaRepository) CreateField(field *models.SchemaField) error {
	return r.db.Create(field).Error
}

// GetFieldByID 根据ID获取字段
func (r *SchemaRepository) GetFieldByID(id string) (*models.SchemaField, error) {
	var field models.SchemaField
	err := r.db.First(&field, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &field, nil
}

// GetFieldsBySchemaID 获取模式下的全部字段
func (r *SchemaRepository) GetFieldsBySchemaID(schemaID string) ([]models.SchemaField, error) {
	var fields []models.SchemaField
	err := r.db.
		Joins("JOIN schema_categories ON schema_categories.id = schema_fields.category_id").
		Where("schema_categories.schema_id = ?", schemaID).
		Find(&fields).Error
	return fields, err
}

// UpdateField 更新字段
func (r *SchemaRepository) UpdateField(field *models.SchemaField) error {
	return r.db.Save(field).Error
}

// DeleteField 删除字段
func (r *SchemaRepository) DeleteField(id string) error {
	return r.db.Delete(&models.SchemaField{}, "id = ?", id).Error
}

// ResetSchema 事务内清空模式下的全部分类并写入新的分类模板
// 删除和重建要么都发生要么都不发生
func (r *SchemaRepository) ResetSchema(schemaID string, categories []models.SchemaCategory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.SchemaCategory
		if err := tx.Where("schema_id = ?", schemaID).Find(&existing).Error; err != nil {
			return err
		}

		for _, category := range existing {
			if err := tx.Where("category_id = ?", category.ID).Delete(&models.SchemaField{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("schema_id = ?", schemaID).Delete(&models.SchemaCategory{}).Error; err != nil {
			return err
		}

		for i := range categories {
			categories[i].SchemaID = schemaID
			if err := tx.Create(&categories[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
