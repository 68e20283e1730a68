package repository

import (
	"specwriter/internal/models"

	"gorm.io/gorm"
)

// SpecificationRepository 规格书数据访问层
type SpecificationRepository struct {
	db *gorm.DB
}

// NewSpecificationRepository 创建规格书Repository
func NewSpecificationRepository(db *gorm.DB) *SpecificationRepository {
	return &SpecificationRepository{db: db}
}

// Create 创建规格书
func (r *SpecificationRepository) Create(spec *models.Specification) error {
	return r.db.Create(spec).Error
}

// GetByID 根据ID获取规格书（带作者）
func (r *SpecificationRepository) GetByID(id string) (*models.Specification, error) {
	var spec models.Specification
	err := r.db.Preload("Author").First(&spec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Update 更新规格书
func (r *SpecificationRepository) Update(spec *models.Specification) error {
	return r.db.Save(spec).Error
}

// Delete 删除规格书，内容值和子实体随外键级联删除
func (r *SpecificationRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteSpecificationChildren(tx, id); err != nil {
			return err
		}
		return tx.Delete(&models.Specification{}, "id = ?", id).Error
	})
}

// ListByAuthor 按作者分页查询规格书
func (r *SpecificationRepository) ListByAuthor(authorID string, offset, limit int, status string, order string) ([]models.Specification, int64, error) {
	var specs []models.Specification
	var total int64

	query := r.db.Model(&models.Specification{}).Where("author_id = ?", authorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(order).Offset(offset).Limit(limit).Find(&specs).Error
	return specs, total, err
}

// GetWithContent 获取规格书及全部内容值与子实体
func (r *SpecificationRepository) GetWithContent(id string) (*models.Specification, error) {
	var spec models.Specification
	err := r.db.
		Preload("ContentValues").
		Preload("Deliverables").
		Preload("ContractorRequirements").
		Preload("BasicBusinessRequirements").
		Preload("BusinessTasks").
		First(&spec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ReplaceContent 事务内整体替换规格书的内容值和子实体，并保存行本身
func (r *SpecificationRepository) ReplaceContent(spec *models.Specification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteSpecificationChildren(tx, spec.ID); err != nil {
			return err
		}

		for i := range spec.ContentValues {
			spec.ContentValues[i].SpecificationID = spec.ID
			if err := tx.Create(&spec.ContentValues[i]).Error; err != nil {
				return err
			}
		}
		for i := range spec.Deliverables {
			spec.Deliverables[i].SpecificationID = spec.ID
			if err := tx.Create(&spec.Deliverables[i]).Error; err != nil {
				return err
			}
		}
		for i := range spec.ContractorRequirements {
			spec.ContractorRequirements[i].SpecificationID = spec.ID
			if err := tx.Create(&spec.ContractorRequirements[i]).Error; err != nil {
				return err
			}
		}
		for i := range spec.BasicBusinessRequirements {
			spec.BasicBusinessRequirements[i].SpecificationID = spec.ID
			if err := tx.Create(&spec.BasicBusinessRequirements[i]).Error; err != nil {
				return err
			}
		}
		for i := range spec.BusinessTasks {
			spec.BusinessTasks[i].SpecificationID = spec.ID
			if err := tx.Create(&spec.BusinessTasks[i]).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Specification{}).
			Where("id = ?", spec.ID).
			Updates(map[string]interface{}{
				"title":  spec.Title,
				"status": spec.Status,
			}).Error
	})
}

// deleteSpecificationChildren 删除规格书的全部内容值和子实体行
func deleteSpecificationChildren(tx *gorm.DB, specID string) error {
	if err := tx.Where("specification_id = ?", specID).Delete(&models.SpecContentValue{}).Error; err != nil {
		return err
	}
	if err := tx.Where("specification_id = ?", specID).Delete(&models.Deliverable{}).Error; err != nil {
		return err
	}
	if err := tx.Where("specification_id = ?", specID).Delete(&models.ContractorRequirement{}).Error; err != nil {
		return err
	}
	if err := tx.Where("specification_id = ?", specID).Delete(&models.BasicBusinessRequirement{}).Error; err != nil {
		return err
	}
	return tx.Where("specification_id = ?", specID).Delete(&models.BusinessTask{}).Error
}
