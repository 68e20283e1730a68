package config

import (
	"fmt"
	"time"
)

// Config 应用配置结构
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis_service"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Seed      SeedConfig      `mapstructure:"seed"`
	Schema    SchemaConfig    `mapstructure:"schema"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress 获取服务器地址
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
}

// GetAddress 获取Redis地址
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey     string `mapstructure:"secret_key"`
	Algorithm     string `mapstructure:"algorithm"`
	Issuer        string `mapstructure:"issuer"`
	ExpireMinutes int    `mapstructure:"expire_minutes"`
}

// GetExpireDuration 获取过期时间
func (j *JWTConfig) GetExpireDuration() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

// CORSConfig CORS配置
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}

// RateLimitConfig 限流配置（固定窗口计数）
type RateLimitConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	WindowMS    int  `mapstructure:"window_ms"`
	MaxRequests int  `mapstructure:"max_requests"`
}

// GetWindow 获取限流窗口时长
func (r *RateLimitConfig) GetWindow() time.Duration {
	return time.Duration(r.WindowMS) * time.Millisecond
}

// SeedAccount 种子账号
type SeedAccount struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	FullName string `mapstructure:"full_name"`
}

// SeedConfig 种子数据配置
type SeedConfig struct {
	Admin   SeedAccount `mapstructure:"admin"`
	Creator SeedAccount `mapstructure:"creator"`
}

// SchemaConfig 表单模式配置
// 默认模式ID统一从这里读取，代码中不再散落硬编码常量
type SchemaConfig struct {
	DefaultSchemaID string `mapstructure:"default_schema_id"`
}
