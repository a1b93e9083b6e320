package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// RedisOTPCache mirrors active OTPs under otp:{transactionId}
type RedisOTPCache struct {
	client *redis.Client
}

// NewRedisOTPCache creates an OTP cache backed by Redis strings
func NewRedisOTPCache(client *redis.Client) *RedisOTPCache {
	return &RedisOTPCache{client: client}
}

func otpKey(transactionID uint64) string {
	return otpKeyPrefix + strconv.FormatUint(transactionID, 10)
}

// Set stores the code with the given TTL
func (c *RedisOTPCache) Set(ctx context.Context, transactionID uint64, code string, ttl time.Duration) error {
	return c.client.Set(ctx, otpKey(transactionID), code, ttl).Err()
}

// Get returns the cached code. A missing key is not an error.
func (c *RedisOTPCache) Get(ctx context.Context, transactionID uint64) (string, bool, error) {
	code, err := c.client.Get(ctx, otpKey(transactionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

// Delete removes the cached code
func (c *RedisOTPCache) Delete(ctx context.Context, transactionID uint64) error {
	return c.client.Del(ctx, otpKey(transactionID)).Err()
}
