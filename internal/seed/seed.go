package seed

import (
	"errors"
	"fmt"

	"specwriter/internal/config"
	"specwriter/internal/models"
	"specwriter/internal/repository"
	"specwriter/internal/utils"

	"gorm.io/gorm"
)

// Run 播种角色、初始账号和默认模式，可重复执行
func Run(db *gorm.DB, cfg *config.Config) error {
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)

	adminRole, err := roleRepo.EnsureRole(models.RoleAdministrator)
	if err != nil {
		return fmt.Errorf("播种管理员角色失败: %w", err)
	}
	creatorRole, err := roleRepo.EnsureRole(models.RoleCreator)
	if err != nil {
		return fmt.Errorf("播种创建者角色失败: %w", err)
	}

	if err := ensureUser(userRepo, cfg.Seed.Admin, []models.Role{*adminRole, *creatorRole}); err != nil {
		return fmt.Errorf("播种管理员账号失败: %w", err)
	}
	if err := ensureUser(userRepo, cfg.Seed.Creator, []models.Role{*creatorRole}); err != nil {
		return fmt.Errorf("播种创建者账号失败: %w", err)
	}

	if err := ensureDefaultSchema(db, cfg.Schema.DefaultSchemaID); err != nil {
		return fmt.Errorf("播种默认模式失败: %w", err)
	}

	return nil
}

// ensureUser 账号不存在时创建并关联角色
func ensureUser(userRepo *repository.UserRepository, account config.SeedAccount, roles []models.Role) error {
	exists, err := userRepo.ExistsByEmail(account.Email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := utils.HashPassword(account.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:        account.Email,
		PasswordHash: hash,
		FullName:     account.FullName,
		Roles:        roles,
	}
	return userRepo.Create(user)
}

// ensureDefaultSchema 默认模式不存在时按模板创建
func ensureDefaultSchema(db *gorm.DB, schemaID string) error {
	var schema models.Schema
	err := db.First(&schema, "id = ?", schemaID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	schema = models.Schema{
		ID:         schemaID,
		Name:       "Default Specification Schema",
		IsDefault:  true,
		Categories: DefaultCategories(),
	}
	return db.Create(&schema).Error
}
