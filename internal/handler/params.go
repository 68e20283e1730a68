package handler

import (
	"specwriter/internal/utils"

	"github.com/gin-gonic/gin"
)

// uuidParam 读取并校验UUID路径参数
// 格式非法时直接返回400，不进入服务层
func uuidParam(c *gin.Context, name string) (string, bool) {
	value := c.Param(name)
	if !utils.IsUUID(value) {
		utils.BadRequest(c, "Invalid UUID: "+value)
		return "", false
	}
	return value, true
}
