package handler

import (
	"specwriter/internal/dto"
	"specwriter/internal/middleware"
	"specwriter/internal/service"
	"specwriter/internal/utils"

	"github.com/gin-gonic/gin"
)

// SpecificationHandler 规格书处理器
type SpecificationHandler struct {
	specService *service.SpecificationService
}

// NewSpecificationHandler 创建规格书处理器
func NewSpecificationHandler(specService *service.SpecificationService) *SpecificationHandler {
	return &SpecificationHandler{
		specService: specService,
	}
}

// List 分页查询当前用户的规格书
// @Summary 规格书列表
// @Tags 规格书
// @Security BearerAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Param status query string false "状态过滤"
// @Param sort query string false "排序，-前缀表示降序"
// @Success 200 {object} utils.Response{data=utils.PageResult}
// @Router /api/specifications [get]
func (h *SpecificationHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var query dto.ListSpecificationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.specService.List(userID, &query)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// Create 创建空壳规格书
func (h *SpecificationHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.CreateSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	spec, err := h.specService.Create(userID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, spec)
}

// Get 获取规格书详情
func (h *SpecificationHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.specService.GetByID(id, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, detail)
}

// Update 更新标题或状态
func (h *SpecificationHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	spec, err := h.specService.Update(id, userID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, spec)
}

// Delete 删除规格书及其内容
func (h *SpecificationHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.specService.Delete(id, userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, nil)
}

// GetContent 获取向导内容
func (h *SpecificationHandler) GetContent(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	content, err := h.specService.GetContent(id, userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, content)
}

// SaveContent 保存向导内容（权威写入）
func (h *SpecificationHandler) SaveContent(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.SaveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	content, err := h.specService.SaveContent(id, userID, &req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, content)
}
