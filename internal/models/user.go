package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 角色名称常量
const (
	RoleAdministrator = "ADMINISTRATOR"
	RoleCreator       = "CREATOR"
)

// Role 角色模型，种子数据写入后不再变更
type Role struct {
	ID       string `gorm:"type:char(36);primarykey" json:"id"`
	RoleName string `gorm:"uniqueIndex;size:50;not null" json:"roleName"`
}

// TableName 指定表名
func (Role) TableName() string {
	return "roles"
}

// BeforeCreate 生成主键
func (r *Role) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// User 用户模型
type User struct {
	ID           string    `gorm:"type:char(36);primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FullName     string    `gorm:"size:255" json:"fullName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// 关联
	Roles []Role `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE" json:"roles,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// BeforeCreate 生成主键
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// RoleNames 返回用户的角色名列表
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.RoleName)
	}
	return names
}
