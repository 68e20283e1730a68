package middleware

import (
	"specwriter/internal/models"
	"specwriter/internal/utils"

	"github.com/gin-gonic/gin"
)

// HasAny 判断用户角色与所需角色是否有交集
// 只做角色检查，资源所有权检查始终留在服务层
func HasAny(userRoles []string, requiredRoles []string) bool {
	for _, required := range requiredRoles {
		for _, role := range userRoles {
			if role == required {
				return true
			}
		}
	}
	return false
}

// RequireRoles 角色门禁中间件，需要持有任一指定角色
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasAny(GetRoles(c), roles) {
			utils.Forbidden(c, "Insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 管理员门禁中间件
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleAdministrator)
}
