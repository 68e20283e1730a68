package service

import (
	"testing"

	"specwriter/internal/apperrors"
	"specwriter/internal/dto"
	"specwriter/internal/models"
	"specwriter/internal/repository"
	"specwriter/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSchemaService(db *gorm.DB) *SchemaService {
	return NewSchemaService(repository.NewSchemaRepository(db))
}

func TestGetSchemaSorted(t *testing.T) {
	db := newTestDB(t)
	svc := newSchemaService(db)

	schema := &models.Schema{
		Name: "Ordering",
		Categories: []models.SchemaCategory{
			{Name: "Second", DisplayOrder: 2},
			{Name: "First", DisplayOrder: 1, Fields: []models.SchemaField{
				{FieldName: "B", DataType: models.DataTypeText, DisplayOrder: 2},
				{FieldName: "A", DataType: models.DataTypeText, DisplayOrder: 1},
			}},
		},
	}
	require.NoError(t, db.Create(schema).Error)

	got, err := svc.GetSchemaByID(schema.ID)
	require.NoError(t, err)
	require.Len(t, got.Categories, 2)
	assert.Equal(t, "First", got.Categories[0].Name)
	assert.Equal(t, "Second", got.Categories[1].Name)
	require.Len(t, got.Categories[0].Fields, 2)
	assert.Equal(t, "A", got.Categories[0].Fields[0].FieldName)

	_, err = svc.GetSchemaByID("00000000-0000-4000-8000-000000000000")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreateCategoryRequiresSchema(t *testing.T) {
	db := newTestDB(t)
	svc := newSchemaService(db)

	_, err := svc.CreateCategory(&dto.CreateCategoryRequest{
		SchemaID: "00000000-0000-4000-8000-000000000000",
		Name:     "Orphan",
	})
	assert.True(t, apperrors.IsNotFound(err))

	schema := createTestSchema(t, db)
	category, err := svc.CreateCategory(&dto.CreateCategoryRequest{
		SchemaID:     schema.ID,
		Name:         "Extra",
		DisplayOrder: 9,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, schema.ID, category.SchemaID)
}

func TestCreateFieldDataTypeInvariants(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	svc := newSchemaService(db)
	categoryID := schema.Categories[0].ID

	// RADIO/CHECKBOX 必须带选项
	for _, dataType := range []string{models.DataTypeRadio, models.DataTypeCheckbox} {
		_, err := svc.CreateField(&dto.CreateFieldRequest{
			CategoryID: categoryID,
			FieldName:  "Choice",
			DataType:   dataType,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Options are required")
	}

	// LIST 必须带目标子实体
	_, err := svc.CreateField(&dto.CreateFieldRequest{
		CategoryID: categoryID,
		FieldName:  "Items",
		DataType:   models.DataTypeList,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listTargetEntity is required")

	// 合法创建
	field, err := svc.CreateField(&dto.CreateFieldRequest{
		CategoryID: categoryID,
		FieldName:  "Priority",
		DataType:   models.DataTypeRadio,
		Options:    []string{"Low", "High"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Low", "High"}, field.Options)
}

func TestUpdateFieldPreservesOptions(t *testing.T) {
	db := newTestDB(t)
	createTestSchema(t, db)
	svc := newSchemaService(db)
	field := fieldByName(t, db, "Scale")

	// 数据类型不变且未提交新选项，原选项保留
	newName := "Scale Updated"
	updated, err := svc.UpdateField(field.ID, &dto.UpdateFieldRequest{FieldName: &newName})
	require.NoError(t, err)
	assert.Equal(t, []string{"Small", "Large"}, updated.Options)

	// 文本字段改为RADIO但不带选项，与创建时同样报错
	textField := fieldByName(t, db, "Title")
	radio := models.DataTypeRadio
	_, err = svc.UpdateField(textField.ID, &dto.UpdateFieldRequest{DataType: &radio})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Options are required")
}

func TestDeleteCategoryCascadesFields(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	svc := newSchemaService(db)
	categoryID := schema.Categories[0].ID

	require.NoError(t, svc.DeleteCategory(categoryID))

	var fieldCount int64
	require.NoError(t, db.Model(&models.SchemaField{}).Where("category_id = ?", categoryID).Count(&fieldCount).Error)
	assert.Zero(t, fieldCount)

	assert.True(t, apperrors.IsNotFound(svc.DeleteCategory(categoryID)))
}

func TestResetSchemaToDefault(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	svc := newSchemaService(db)

	got, err := svc.ResetSchemaToDefault(schema.ID)
	require.NoError(t, err)

	// 旧分类被清空，默认模板写入
	template := seed.DefaultCategories()
	require.Len(t, got.Categories, len(template))
	for i, category := range got.Categories {
		assert.Equal(t, template[i].Name, category.Name)
	}

	var orphanCount int64
	require.NoError(t, db.Model(&models.SchemaCategory{}).Where("name = ?", "Main").Count(&orphanCount).Error)
	assert.Zero(t, orphanCount)

	_, err = svc.ResetSchemaToDefault("00000000-0000-4000-8000-000000000000")
	assert.True(t, apperrors.IsNotFound(err))
}
