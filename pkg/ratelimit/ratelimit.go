package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter 基于Redis的固定窗口限流器
type RedisLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
	keyPrefix   string
}

// NewRedisLimiter 创建固定窗口限流器
func NewRedisLimiter(client *redis.Client, maxRequests int, window time.Duration, keyPrefix string) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
		keyPrefix:   keyPrefix,
	}
}

// allowScript 计数并在首个请求时设置窗口过期
// Lua脚本保证INCR和PEXPIRE的原子性
var allowScript = redis.NewScript(
	`local count = redis.call('INCR', KEYS[1])
	if count == 1 then
		redis.call('PEXPIRE', KEYS[1], tonumber(ARGV[1]))
	end
	return count`,
)

// Allow 判断本窗口内该key是否还允许请求
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rl.keyPrefix + key

	result, err := allowScript.Run(ctx, rl.client, []string{redisKey}, rl.window.Milliseconds()).Result()
	if err != nil {
		return false, fmt.Errorf("执行限流脚本失败: %w", err)
	}

	count, ok := result.(int64)
	if !ok {
		return false, fmt.Errorf("限流脚本返回值类型异常: %T", result)
	}

	return count <= int64(rl.maxRequests), nil
}

// Current 获取当前窗口内的计数
func (rl *RedisLimiter) Current(ctx context.Context, key string) (int, error) {
	redisKey := rl.keyPrefix + key
	count, err := rl.client.Get(ctx, redisKey).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MaxRequests 获取窗口内允许的最大请求数
func (rl *RedisLimiter) MaxRequests() int {
	return rl.maxRequests
}
