package middleware

import (
	"specwriter/internal/utils"
	"specwriter/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RateLimitMiddleware 按客户端IP限流
// Redis不可用时放行，限流器故障不应拖垮接口
func RateLimitMiddleware(limiter *ratelimit.RedisLimiter, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.WithError(err).Warn("限流检查失败，本次放行")
			c.Next()
			return
		}

		if !allowed {
			utils.TooManyRequests(c, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
