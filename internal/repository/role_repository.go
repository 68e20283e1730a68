package repository

import (
	"specwriter/internal/models"

	"gorm.io/gorm"
)

// RoleRepository 角色数据访问层
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建角色Repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetByName 根据角色名获取角色
func (r *RoleRepository) GetByName(name string) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("role_name = ?", name).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByNames 根据角色名列表获取角色
func (r *RoleRepository) GetByNames(names []string) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.Where("role_name IN ?", names).Find(&roles).Error
	return roles, err
}

// EnsureRole 角色不存在时创建
func (r *RoleRepository) EnsureRole(name string) (*models.Role, error) {
	role, err := r.GetByName(name)
	if err == nil {
		return role, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	role = &models.Role{RoleName: name}
	if err := r.db.Create(role).Error; err != nil {
		return nil, err
	}
	return role, nil
}
