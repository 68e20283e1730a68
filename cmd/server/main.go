package main

import (
	"log"
	"os"

	"specwriter/internal/config"
	"specwriter/internal/models"
	"specwriter/internal/router"
	"specwriter/internal/seed"
	"specwriter/internal/utils"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func main() {
	// 加载配置（从项目根目录读取）
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 初始化日志
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logrus.InfoLevel)

	// 初始化数据库
	db, err := models.OpenDB(cfg.Database.URL)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("迁移数据库失败: %v", err)
	}

	// 播种角色、初始账号和默认模式
	if err := seed.Run(db, cfg); err != nil {
		logger.Warnf("播种初始数据失败: %v", err)
	}

	// 初始化Redis（仅限流使用）
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddress(),
			DB:       cfg.Redis.DB,
			Password: cfg.Redis.Password,
		})
	}

	// 初始化JWT管理器
	jwtManager := utils.NewJWTManager(
		cfg.JWT.SecretKey,
		cfg.JWT.Algorithm,
		cfg.JWT.Issuer,
		cfg.JWT.GetExpireDuration(),
	)

	// 设置路由
	r := router.SetupRouter(cfg, jwtManager, logger, db, redisClient)

	// 启动服务器
	addr := cfg.Server.GetAddress()
	logger.Infof("服务器启动在 %s", addr)

	if cfg.Server.ProductionMode {
		logger.Info("生产模式: 错误详情已屏蔽")
	} else {
		logger.Infof("开发模式: 种子管理员 %s", cfg.Seed.Admin.Email)
	}

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}
}
