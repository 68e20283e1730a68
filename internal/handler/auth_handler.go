package handler

import (
	"specwriter/internal/dto"
	"specwriter/internal/middleware"
	"specwriter/internal/service"
	"specwriter/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login 用户登录
// @Summary 用户登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} utils.Response{data=dto.LoginResponse}
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.BindingErrorMessage(err))
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// Me 获取当前用户信息
// @Summary 获取当前用户信息
// @Tags 认证
// @Security BearerAuth
// @Success 200 {object} utils.Response{data=dto.UserInfo}
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	userInfo, err := h.authService.Me(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, userInfo)
}
