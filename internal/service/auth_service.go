package service

import (
	"errors"

	"specwriter/internal/apperrors"
	"specwriter/internal/dto"
	"specwriter/internal/repository"
	"specwriter/internal/utils"

	"gorm.io/gorm"
)

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Login 用户登录
// 用户不存在和密码错误返回同一个错误，避免泄露账号是否存在
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewUnauthorized("Invalid email or password")
		}
		return nil, err
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, apperrors.NewUnauthorized("Invalid email or password")
	}

	roles := user.RoleNames()

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, roles)
	if err != nil {
		return nil, apperrors.NewInternal("Failed to generate token")
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserInfo{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Roles:    roles,
		},
	}, nil
}

// Me 获取当前用户信息
func (s *AuthService) Me(userID string) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("User not found")
		}
		return nil, err
	}

	return &dto.UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Roles:    user.RoleNames(),
	}, nil
}
