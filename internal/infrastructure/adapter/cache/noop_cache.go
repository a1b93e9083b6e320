package cache

import (
	"context"
	"time"
)

// NoopOTPCache is used when Redis is not configured. Every lookup misses.
type NoopOTPCache struct{}

// NewNoopOTPCache creates a cache that stores nothing
func NewNoopOTPCache() *NoopOTPCache {
	return &NoopOTPCache{}
}

// Set does nothing
func (NoopOTPCache) Set(context.Context, uint64, string, time.Duration) error { return nil }

// Get always misses
func (NoopOTPCache) Get(context.Context, uint64) (string, bool, error) { return "", false, nil }

// Delete does nothing
func (NoopOTPCache) Delete(context.Context, uint64) error { return nil }
