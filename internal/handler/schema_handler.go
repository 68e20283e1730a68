package handler

import (
	"specwriter/internal/dto"
	"specwriter/internal/service"
	"specwriter/internal/utils"

	"github.com/gin-gonic/gin"
)

// SchemaHandler 表单模式处理器
type SchemaHandler struct {
	schemaService *service.SchemaService
}

// NewSchemaHandler 创建模式处理器
func NewSchemaHandler(schemaService *service.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		schemaService: schemaService,
	}
}

// GetSchema 获取模式详情
// @Summary 获取模式及排序后的分类和字段
// @Tags 模式
// @Security BearerAuth
// @Param schemaId path string true "模式ID"
// @Success 200 {object} utils.Response{data=models.Schema}
// @Router /api/schema/{schemaId} [get]
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	schemaID, ok := uuidParam(c, "schemaId")
	if !ok {
		return
	}

	schema, err := h.schemaService.GetSchemaByID(schemaID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, schema)
}

// CreateCategory 创建分类
func (h *SchemaHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	category, err := h.schemaService.CreateCategory(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, category)
}

// UpdateCategory 更新分类
func (h *SchemaHandler) UpdateCategory(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	category, err := h.schemaService.UpdateCategory(id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, category)
}

// DeleteCategory 删除分类及其字段
func (h *SchemaHandler) DeleteCategory(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.schemaService.DeleteCategory(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil)
}

// CreateField 创建字段
func (h *SchemaHandler) CreateField(c *gin.Context) {
	var req dto.CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	field, err := h.schemaService.CreateField(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, field)
}

// UpdateField 更新字段
func (h *SchemaHandler) UpdateField(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	field, err := h.schemaService.UpdateField(id, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, field)
}

// DeleteField 删除字段
func (h *SchemaHandler) DeleteField(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.schemaService.DeleteField(id); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil)
}

// ResetSchema 把模式重置为默认模板
func (h *SchemaHandler) ResetSchema(c *gin.Context) {
	var req dto.ResetSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	schema, err := h.schemaService.ResetSchemaToDefault(req.SchemaID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, schema)
}
