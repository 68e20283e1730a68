package service

import (
	"fmt"
	"testing"

	"specwriter/internal/apperrors"
	"specwriter/internal/dto"
	"specwriter/internal/models"
	"specwriter/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSpecService(db *gorm.DB, defaultSchemaID string) *SpecificationService {
	return NewSpecificationService(
		repository.NewSpecificationRepository(db),
		repository.NewSchemaRepository(db),
		defaultSchemaID,
	)
}

func TestCreateSpecificationShell(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	user := createTestUser(t, db, "creator@example.com", models.RoleCreator)
	svc := newSpecService(db, schema.ID)

	// 不传模式ID时使用默认模式
	spec, err := svc.Create(user.ID, &dto.CreateSpecificationRequest{})
	require.NoError(t, err)
	assert.Equal(t, schema.ID, spec.SchemaID)
	assert.Equal(t, models.StatusDraft, spec.Status)
	assert.Equal(t, "1.0", spec.Version)
	assert.Equal(t, user.ID, spec.AuthorID)

	// 模式不存在返回404
	_, err = svc.Create(user.ID, &dto.CreateSpecificationRequest{
		SchemaID: "00000000-0000-4000-8000-000000000000",
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOwnershipSplit(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	creator := createTestUser(t, db, "creator@example.com", models.RoleCreator)
	admin := createTestUser(t, db, "admin@example.com", models.RoleAdministrator, models.RoleCreator)
	svc := newSpecService(db, schema.ID)

	spec, err := svc.Create(creator.ID, &dto.CreateSpecificationRequest{})
	require.NoError(t, err)

	// 不存在 → 404
	_, err = svc.GetByID("00000000-0000-4000-8000-000000000000", creator.ID)
	assert.True(t, apperrors.IsNotFound(err))

	// 存在但非本人 → 403，管理员角色也不例外
	_, err = svc.GetByID(spec.ID, admin.ID)
	assert.True(t, apperrors.IsForbidden(err))
	assert.True(t, apperrors.IsForbidden(svc.Delete(spec.ID, admin.ID)))

	// 本人可读
	detail, err := svc.GetByID(spec.ID, creator.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Author)
	assert.Equal(t, creator.ID, detail.Author.ID)
	assert.Equal(t, "creator@example.com", detail.Author.Email)

	// 删除后 → 404
	require.NoError(t, svc.Delete(spec.ID, creator.ID))
	_, err = svc.GetByID(spec.ID, creator.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	user := createTestUser(t, db, "creator@example.com", models.RoleCreator)
	other := createTestUser(t, db, "other@example.com", models.RoleCreator)
	svc := newSpecService(db, schema.ID)

	for i := 0; i < 25; i++ {
		spec, err := svc.Create(user.ID, &dto.CreateSpecificationRequest{})
		require.NoError(t, err)
		title := fmt.Sprintf("Spec %02d", i)
		_, err = svc.Update(spec.ID, user.ID, &dto.UpdateSpecificationRequest{Title: &title})
		require.NoError(t, err)
	}
	_, err := svc.Create(other.ID, &dto.CreateSpecificationRequest{})
	require.NoError(t, err)

	// 只看到自己的，totalPages = ceil(total/limit)
	result, err := svc.List(user.ID, &dto.ListSpecificationsQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Len(t, result.Items.([]models.Specification), 10)

	// 末页不足limit
	result, err = svc.List(user.ID, &dto.ListSpecificationsQuery{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, result.Items.([]models.Specification), 5)

	// 越界参数收敛到合法范围
	result, err = svc.List(user.ID, &dto.ListSpecificationsQuery{Page: -3, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 100, result.Pagination.Limit)

	// 排序白名单外的字段被拒绝
	_, err = svc.List(user.ID, &dto.ListSpecificationsQuery{Sort: "passwordHash"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)

	// 按标题升序
	result, err = svc.List(user.ID, &dto.ListSpecificationsQuery{Limit: 5, Sort: "title"})
	require.NoError(t, err)
	items := result.Items.([]models.Specification)
	assert.Equal(t, "Spec 00", items[0].Title)
}

func TestListStatusFilter(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	user := createTestUser(t, db, "creator@example.com", models.RoleCreator)
	svc := newSpecService(db, schema.ID)

	spec, err := svc.Create(user.ID, &dto.CreateSpecificationRequest{})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, &dto.CreateSpecificationRequest{})
	require.NoError(t, err)

	review := models.StatusReview
	_, err = svc.Update(spec.ID, user.ID, &dto.UpdateSpecificationRequest{Status: &review})
	require.NoError(t, err)

	result, err := svc.List(user.ID, &dto.ListSpecificationsQuery{Status: models.StatusReview})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Pagination.Total)

	_, err = svc.List(user.ID, &dto.ListSpecificationsQuery{Status: "BOGUS"})
	require.Error(t, err)
}

func TestSaveContentRoundTrip(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	user := createTestUser(t, db, "creator@example.com", models.RoleCreator)
	svc := newSpecService(db, schema.ID)

	spec, err := svc.Create(user.ID, &dto.CreateSpecificationRequest{})
	require.NoError(t, err)

	titleField := fieldByName(t, db, "Title")
	scaleField := fieldByName(t, db, "Scale")
	skillsField := fieldByName(t, db, "Skills")

	content, err := svc.SaveContent(spec.ID, user.ID, &dto.SaveContentRequest{
		Values: []dto.FieldValueInput{
			{FieldID: titleField.ID, Value: "CRM rollout"},
			{FieldID: scaleField.ID, Value: "Large"},
			{FieldID: skillsField.ID, Values: []string{"Web", "Design"}},
		},
		Deliverables: []dto.DeliverableInput{
			{Name: "Admin portal", Quantity: 1, Description: "Back-office UI"},
		},
		BusinessTasks: []dto.BusinessTaskInput{
			{Title: "Import legacy data", DetailedSpec: "CSV import"},
		},
	})
	require.NoError(t, err)

	// 权威保存后状态置为SAVED
	assert.Equal(t, models.StatusSaved, content.Status)
	assert.Len(t, content.Values, 3)
	require.Len(t, content.Deliverables, 1)
	assert.Equal(t, "Admin portal", content.Deliverables[0].Name)
	require.Len(t, content.BusinessTasks, 1)

	// 重新加载与保存一致
	loaded, err := svc.GetContent(spec.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, content.Values, loaded.Values)
	assert.Equal(t, content.Deliverables, loaded.Deliverables)

	// 再次保存整体替换而不是累加
	content, err = svc.SaveContent(spec.ID, user.ID, &dto.SaveContentRequest{
		Values: []dto.FieldValueInput{{FieldID: titleField.ID, Value: "CRM rollout v2"}},
	})
	require.NoError(t, err)
	assert.Len(t, content.Values, 1)
	assert.Empty(t, content.Deliverables)
}

func TestSaveContentValidation(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	user := createTestUser(t, db, "creator@example.com", models.RoleCreator)
	svc := newSpecService(db, schema.ID)

	spec, err := svc.Create(user.ID, &dto.CreateSpecificationRequest{})
	require.NoError(t, err)

	scaleField := fieldByName(t, db, "Scale")
	skillsField := fieldByName(t, db, "Skills")
	listField := fieldByName(t, db, "Deliverables")

	// RADIO 值必须在选项内
	_, err = svc.SaveContent(spec.ID, user.ID, &dto.SaveContentRequest{
		Values: []dto.FieldValueInput{{FieldID: scaleField.ID, Value: "Gigantic"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not among options")

	// CHECKBOX 值必须是选项子集
	_, err = svc.SaveContent(spec.ID, user.ID, &dto.SaveContentRequest{
		Values: []dto.FieldValueInput{{FieldID: skillsField.ID, Values: []string{"Web", "Blockchain"}}},
	})
	require.Error(t, err)

	// LIST 字段不接受键值对
	_, err = svc.SaveContent(spec.ID, user.ID, &dto.SaveContentRequest{
		Values: []dto.FieldValueInput{{FieldID: listField.ID, Value: "x"}},
	})
	require.Error(t, err)

	// 未知字段
	_, err = svc.SaveContent(spec.ID, user.ID, &dto.SaveContentRequest{
		Values: []dto.FieldValueInput{{FieldID: "00000000-0000-4000-8000-000000000000", Value: "x"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown field")
}

func TestDeleteCascadesContent(t *testing.T) {
	db := newTestDB(t)
	schema := createTestSchema(t, db)
	user := createTestUser(t, db, "creator@example.com", models.RoleCreator)
	svc := newSpecService(db, schema.ID)

	spec, err := svc.Create(user.ID, &dto.CreateSpecificationRequest{})
	require.NoError(t, err)

	titleField := fieldByName(t, db, "Title")
	_, err = svc.SaveContent(spec.ID, user.ID, &dto.SaveContentRequest{
		Values:       []dto.FieldValueInput{{FieldID: titleField.ID, Value: "To be removed"}},
		Deliverables: []dto.DeliverableInput{{Name: "Doomed deliverable"}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(spec.ID, user.ID))

	var valueCount, deliverableCount int64
	require.NoError(t, db.Model(&models.SpecContentValue{}).Where("specification_id = ?", spec.ID).Count(&valueCount).Error)
	require.NoError(t, db.Model(&models.Deliverable{}).Where("specification_id = ?", spec.ID).Count(&deliverableCount).Error)
	assert.Zero(t, valueCount)
	assert.Zero(t, deliverableCount)
}
