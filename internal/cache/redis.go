package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisClient struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int, log *zap.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis connected successfully", zap.String("addr", addr))

	return &RedisClient{
		client: rdb,
		log:    log,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// Cart badge counter. Best effort: a miss or a redis error both read as "not cached".

func (r *RedisClient) GetCartCount(ctx context.Context, identityKey string) (int64, bool) {
	val, err := r.client.Get(ctx, "cart_count:"+identityKey).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r *RedisClient) SetCartCount(ctx context.Context, identityKey string, count int64, ttl time.Duration) {
	if err := r.client.Set(ctx, "cart_count:"+identityKey, count, ttl).Err(); err != nil {
		r.log.Warn("failed to cache cart count", zap.String("key", identityKey), zap.Error(err))
	}
}

func (r *RedisClient) InvalidateCartCount(ctx context.Context, identityKeys ...string) {
	keys := make([]string, 0, len(identityKeys))
	for _, k := range identityKeys {
		if k != "" {
			keys = append(keys, "cart_count:"+k)
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn("failed to invalidate cart count", zap.Error(err))
	}
}

// Merge lock serializes cart merges per session token across replicas.

func (r *RedisClient) AcquireMergeLock(ctx context.Context, sessionToken string, ttl time.Duration) (bool, error) {
	return r.client.SetNX(ctx, "cart_merge_lock:"+sessionToken, "1", ttl).Result()
}

func (r *RedisClient) ReleaseMergeLock(ctx context.Context, sessionToken string) {
	if err := r.client.Del(ctx, "cart_merge_lock:"+sessionToken).Err(); err != nil {
		r.log.Warn("failed to release merge lock", zap.String("token", sessionToken), zap.Error(err))
	}
}
