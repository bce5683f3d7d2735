// Package redis holds the Redis-backed coordination used when REDIS_ENABLED is set.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultLockTTL bounds how long a crashed holder can block an entity.
const DefaultLockTTL = 10 * time.Second

// LockStore handles distributed locking in Redis. Keys are entity keys such
// as "ride:ride-101" or "driver:d1", stored as "lock:ride:ride-101".
type LockStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLockStore creates a new LockStore. A non-positive ttl uses
// DefaultLockTTL.
func NewLockStore(client *redis.Client, ttl time.Duration) *LockStore {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return &LockStore{client: client, ttl: ttl}
}

func lockKey(key string) string {
	return fmt.Sprintf("lock:%s", key)
}

// Acquire attempts to take the lock for key.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockKey(key), "1", s.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Release releases the lock for key.
func (s *LockStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, lockKey(key)).Err()
}
