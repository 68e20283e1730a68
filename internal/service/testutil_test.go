package service

import (
	"fmt"
	"strings"
	"testing"

	"specwriter/internal/models"
	"specwriter/internal/repository"
	"specwriter/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 每个测试使用独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := models.OpenDB(dsn)
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

// createTestUser 创建测试用户并赋予角色
func createTestUser(t *testing.T, db *gorm.DB, email string, roleNames ...string) *models.User {
	t.Helper()

	roleRepo := repository.NewRoleRepository(db)
	roles := make([]models.Role, 0, len(roleNames))
	for _, name := range roleNames {
		role, err := roleRepo.EnsureRole(name)
		require.NoError(t, err)
		roles = append(roles, *role)
	}

	hash, err := utils.HashPassword("Password123!")
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test User",
		Roles:        roles,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestSchema 创建带一个分类的测试模式
func createTestSchema(t *testing.T, db *gorm.DB) *models.Schema {
	t.Helper()

	schema := &models.Schema{
		Name:      "Test Schema",
		IsDefault: true,
		Categories: []models.SchemaCategory{
			{
				Name:         "Main",
				DisplayOrder: 1,
				Fields: []models.SchemaField{
					{FieldName: "Title", DataType: models.DataTypeText, IsRequired: true, DisplayOrder: 1},
					{FieldName: "Scale", DataType: models.DataTypeRadio, Options: []string{"Small", "Large"}, DisplayOrder: 2},
					{FieldName: "Skills", DataType: models.DataTypeCheckbox, Options: []string{"Web", "Mobile", "Design"}, DisplayOrder: 3},
					{FieldName: "Deliverables", DataType: models.DataTypeList, ListTargetEntity: models.ListTargetDeliverable, DisplayOrder: 4},
				},
			},
		},
	}
	require.NoError(t, db.Create(schema).Error)
	return schema
}

// fieldByName 按名称查找模式字段
func fieldByName(t *testing.T, db *gorm.DB, name string) *models.SchemaField {
	t.Helper()

	var field models.SchemaField
	require.NoError(t, db.Where("field_name = ?", name).First(&field).Error)
	return &field
}
