package service

import (
	"errors"
	"strings"

	"specwriter/internal/apperrors"
	"specwriter/internal/dto"
	"specwriter/internal/models"
	"specwriter/internal/repository"
	"specwriter/internal/utils"

	"gorm.io/gorm"
)

// 分页和排序约束
const (
	defaultPageLimit = 10
	maxPageLimit     = 100
	defaultSort      = "-updatedAt"
)

// 排序字段白名单，键为API参数名，值为数据库列名
var sortColumns = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
	"title":     "title",
	"version":   "version",
}

// SpecificationService 规格书服务
type SpecificationService struct {
	specRepo        *repository.SpecificationRepository
	schemaRepo      *repository.SchemaRepository
	defaultSchemaID string
}

// NewSpecificationService 创建规格书服务
func NewSpecificationService(
	specRepo *repository.SpecificationRepository,
	schemaRepo *repository.SchemaRepository,
	defaultSchemaID string,
) *SpecificationService {
	return &SpecificationService{
		specRepo:        specRepo,
		schemaRepo:      schemaRepo,
		defaultSchemaID: defaultSchemaID,
	}
}

// List 分页查询当前用户的规格书
func (s *SpecificationService) List(userID string, query *dto.ListSpecificationsQuery) (*utils.PageResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if query.Status != "" && !models.IsValidStatus(query.Status) {
		return nil, apperrors.NewValidation("Invalid status: " + query.Status)
	}

	order, err := parseSort(query.Sort)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	specs, total, err := s.specRepo.ListByAuthor(userID, offset, limit, query.Status, order)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &utils.PageResult{
		Items: specs,
		Pagination: utils.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Create 创建空壳规格书，状态DRAFT，版本1.0
func (s *SpecificationService) Create(userID string, req *dto.CreateSpecificationRequest) (*models.Specification, error) {
	schemaID := req.SchemaID
	if schemaID == "" {
		schemaID = s.defaultSchemaID
	}

	exists, err := s.schemaRepo.ExistsByID(schemaID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("Schema not found")
	}

	spec := &models.Specification{
		AuthorID: userID,
		SchemaID: schemaID,
		Status:   models.StatusDraft,
		Version:  "1.0",
	}
	if err := s.specRepo.Create(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// GetByID 获取规格书详情
// 不存在返回404，存在但非本人返回403
func (s *SpecificationService) GetByID(id string, userID string) (*dto.SpecificationDetail, error) {
	spec, err := s.getOwned(id, userID)
	if err != nil {
		return nil, err
	}

	detail := &dto.SpecificationDetail{Specification: *spec}
	if spec.Author != nil {
		detail.Author = &dto.AuthorInfo{
			ID:       spec.Author.ID,
			FullName: spec.Author.FullName,
			Email:    spec.Author.Email,
		}
	}
	detail.Specification.Author = nil
	return detail, nil
}

// Update 更新标题或状态，权限规则与GetByID相同
func (s *SpecificationService) Update(id string, userID string, req *dto.UpdateSpecificationRequest) (*models.Specification, error) {
	spec, err := s.getOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		spec.Title = *req.Title
	}
	if req.Status != nil {
		if !models.IsValidStatus(*req.Status) {
			return nil, apperrors.NewValidation("Invalid status: " + *req.Status)
		}
		spec.Status = *req.Status
	}

	spec.Author = nil
	if err := s.specRepo.Update(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// Delete 删除规格书及其全部内容
func (s *SpecificationService) Delete(id string, userID string) error {
	if _, err := s.getOwned(id, userID); err != nil {
		return err
	}
	return s.specRepo.Delete(id)
}

// getOwned 加载规格书并执行所有权检查
// 所有权检查独立于角色检查，对任何角色都生效
func (s *SpecificationService) getOwned(id string, userID string) (*models.Specification, error) {
	spec, err := s.specRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Specification not found")
		}
		return nil, err
	}
	if spec.AuthorID != userID {
		return nil, apperrors.NewForbidden("Access denied")
	}
	return spec, nil
}

// parseSort 解析排序参数，仅允许白名单字段，`-`前缀表示降序
func parseSort(sort string) (string, error) {
	if sort == "" {
		sort = defaultSort
	}

	direction := "ASC"
	field := sort
	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		field = sort[1:]
	}

	column, ok := sortColumns[field]
	if !ok {
		return "", apperrors.NewValidation("Invalid sort field: " + field)
	}
	return column + " " + direction, nil
}
