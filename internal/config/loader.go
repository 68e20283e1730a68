package config

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// LoadConfig 加载配置文件，环境变量优先于文件内容
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 设置配置文件路径
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		// 默认查找 config.yaml
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// 读取环境变量
	v.AutomaticEnv()
	bindEnvs(v)

	// 读取配置文件（环境变量齐全时允许文件缺失）
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configFile != "" {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 解析配置
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 设置默认值
	setDefaults(&cfg)

	// 验证配置
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &cfg, nil
}

// bindEnvs 绑定部署环境约定的环境变量名
func bindEnvs(v *viper.Viper) {
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret_key", "JWT_SECRET")
	_ = v.BindEnv("jwt.expire_minutes", "JWT_EXPIRES_IN")
	_ = v.BindEnv("cors.origins", "CORS_ORIGIN")
	_ = v.BindEnv("rate_limit.window_ms", "RATE_LIMIT_WINDOW_MS")
	_ = v.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
}

// setDefaults 设置默认值
func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 18090
	}
	if cfg.Database.URL == "" {
		cfg.Database.URL = "./database/specwriter.db"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.JWT.Algorithm == "" {
		cfg.JWT.Algorithm = "HS256"
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = "specwriter"
	}
	if cfg.JWT.ExpireMinutes == 0 {
		cfg.JWT.ExpireMinutes = 1440 // 1天
	}
	if cfg.CORS.AllowMethods == nil {
		cfg.CORS.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	if cfg.CORS.AllowHeaders == nil {
		cfg.CORS.AllowHeaders = []string{"*"}
	}
	if cfg.RateLimit.WindowMS == 0 {
		cfg.RateLimit.WindowMS = 60000
	}
	if cfg.RateLimit.MaxRequests == 0 {
		cfg.RateLimit.MaxRequests = 300
	}
	if cfg.Seed.Admin.Email == "" {
		cfg.Seed.Admin.Email = "admin@example.com"
	}
	if cfg.Seed.Admin.Password == "" {
		cfg.Seed.Admin.Password = "Admin123!"
	}
	if cfg.Seed.Admin.FullName == "" {
		cfg.Seed.Admin.FullName = "System Administrator"
	}
	if cfg.Seed.Creator.Email == "" {
		cfg.Seed.Creator.Email = "creator@example.com"
	}
	if cfg.Seed.Creator.Password == "" {
		cfg.Seed.Creator.Password = "Creator123!"
	}
	if cfg.Seed.Creator.FullName == "" {
		cfg.Seed.Creator.FullName = "Specification Creator"
	}
	if cfg.Schema.DefaultSchemaID == "" {
		cfg.Schema.DefaultSchemaID = "3f1b8a52-0000-4000-8000-000000000001"
	}
}

// validateConfig 验证配置
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务器端口: %d", cfg.Server.Port)
	}

	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("JWT密钥不能为空")
	}

	if _, err := uuid.Parse(cfg.Schema.DefaultSchemaID); err != nil {
		return fmt.Errorf("默认模式ID必须是UUID: %w", err)
	}

	return nil
}
