package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"storefront/lib"
	"storefront/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore keeps sessions in Redis so that replicas share them.
type RedisSessionStore struct {
	logger *gecho.Logger
	client *redis.Client
}

func NewRedisSessionStore(logger *gecho.Logger, cfg *structs.Config) *RedisSessionStore {
	return NewRedisSessionStoreWithClient(logger, newRedisClient(cfg))
}

func NewRedisSessionStoreWithClient(logger *gecho.Logger, client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{
		logger: logger,
		client: client,
	}
}

func newRedisClient(cfg *structs.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address,
		Username: cfg.Cache.Username,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,

		// Connection pool settings
		PoolSize:        cfg.Cache.PoolSize,
		MinIdleConns:    cfg.Cache.MinIdleConns,
		MaxIdleConns:    cfg.Cache.MaxIdleConns,
		PoolTimeout:     cfg.Cache.PoolTimeout,
		ConnMaxIdleTime: cfg.Cache.IdleTimeout,

		// Timeouts
		DialTimeout:  cfg.Cache.DialTimeout,
		ReadTimeout:  cfg.Cache.ReadTimeout,
		WriteTimeout: cfg.Cache.WriteTimeout,

		// Retry settings
		MaxRetries:      cfg.Cache.MaxRetries,
		MinRetryBackoff: cfg.Cache.MinRetryBackoff,
		MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
	})
}

// Close closes the Redis connection pool
func (rs *RedisSessionStore) Close() error {
	return rs.client.Close()
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (rs *RedisSessionStore) withRetry(ctx context.Context, operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// logical errors like a missing key are returned as-is
		if !isRetryableError(err) {
			return err
		}

		if attempt == maxRetries {
			break
		}

		backoff := min(100*(1<<attempt), 2000) // ms

		// jitter of up to half the backoff
		jitterBytes := make([]byte, 2)
		jitter := 0
		if _, err := rand.Read(jitterBytes); err == nil {
			jitter = (int(jitterBytes[0])<<8 | int(jitterBytes[1])) % (backoff/2 + 1)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(backoff/2+jitter) * time.Millisecond):
		}
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableError determines if an error is worth retrying
func isRetryableError(err error) bool {
	if err == nil || errors.Is(err, redis.Nil) {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

func (rs *RedisSessionStore) Save(ctx context.Context, session *structs.Session, ttl time.Duration) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session without id")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return rs.withRetry(ctx, func() error {
		return rs.client.Set(ctx, sessionKeyPrefix+session.ID, data, ttl).Err()
	}, 3)
}

func (rs *RedisSessionStore) Load(ctx context.Context, id string) (*structs.Session, error) {
	var data []byte

	err := rs.withRetry(ctx, func() error {
		val, err := rs.client.Get(ctx, sessionKeyPrefix+id).Bytes()
		if err != nil {
			return err
		}
		data = val
		return nil
	}, 3)
	if errors.Is(err, redis.Nil) {
		return nil, lib.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	session := &structs.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		rs.logger.Warn("Dropping unreadable session", gecho.Field("error", err))
		return nil, lib.ErrNotFound
	}

	return session, nil
}

func (rs *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return rs.withRetry(ctx, func() error {
		return rs.client.Del(ctx, sessionKeyPrefix+id).Err()
	}, 3)
}

// Ping tests the Redis connection
func (rs *RedisSessionStore) Ping(ctx context.Context) error {
	return rs.client.Ping(ctx).Err()
}

// GetConnectionStats returns Redis connection pool statistics
func (rs *RedisSessionStore) GetConnectionStats() map[string]any {
	stats := rs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
