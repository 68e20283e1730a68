package router

import (
	"specwriter/internal/config"
	"specwriter/internal/handler"
	"specwriter/internal/middleware"
	"specwriter/internal/repository"
	"specwriter/internal/service"
	"specwriter/internal/utils"
	"specwriter/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg))

	// 健康检查
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Specification Authoring API",
			"version": "1.0.0",
		})
	})

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	schemaRepo := repository.NewSchemaRepository(db)
	specRepo := repository.NewSpecificationRepository(db)

	// 初始化Service
	authService := service.NewAuthService(userRepo, jwtManager)
	schemaService := service.NewSchemaService(schemaRepo)
	specService := service.NewSpecificationService(specRepo, schemaRepo, cfg.Schema.DefaultSchemaID)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(authService)
	schemaHandler := handler.NewSchemaHandler(schemaService)
	specHandler := handler.NewSpecificationHandler(specService)

	// API路由组
	api := r.Group("/api")

	// 限流（按客户端IP的固定窗口）
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisLimiter(
			redisClient,
			cfg.RateLimit.MaxRequests,
			cfg.RateLimit.GetWindow(),
			"ratelimit:",
		)
		api.Use(middleware.RateLimitMiddleware(limiter, logger))
	}

	{
		// 公开路由
		api.POST("/auth/login", authHandler.Login)

		// 认证路由
		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager))
		{
			// 用户信息
			authorized.GET("/auth/me", authHandler.Me)

			// 规格书（所有权检查在服务层）
			authorized.GET("/specifications", specHandler.List)
			authorized.POST("/specifications", specHandler.Create)
			authorized.GET("/specifications/:id", specHandler.Get)
			authorized.PUT("/specifications/:id", specHandler.Update)
			authorized.DELETE("/specifications/:id", specHandler.Delete)
			authorized.GET("/specifications/:id/content", specHandler.GetContent)
			authorized.PUT("/specifications/:id/content", specHandler.SaveContent)

			// 模式管理，仅管理员
			adminGroup := authorized.Group("/schema")
			adminGroup.Use(middleware.RequireAdmin())
			{
				adminGroup.GET("/:schemaId", schemaHandler.GetSchema)
				adminGroup.POST("/categories", schemaHandler.CreateCategory)
				adminGroup.PUT("/categories/:id", schemaHandler.UpdateCategory)
				adminGroup.DELETE("/categories/:id", schemaHandler.DeleteCategory)
				adminGroup.POST("/fields", schemaHandler.CreateField)
				adminGroup.PUT("/fields/:id", schemaHandler.UpdateField)
				adminGroup.DELETE("/fields/:id", schemaHandler.DeleteField)
				adminGroup.POST("/reset", schemaHandler.ResetSchema)
			}
		}
	}

	return r
}
