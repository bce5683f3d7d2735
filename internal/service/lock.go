package service

import (
	"context"
	"log"
	"sync"
)

// Locker serialises changes to a single entity. Keys name the entity, e.g.
// "ride:ride-101" or "driver:d1". Acquire reports false when another caller
// holds the key.
type Locker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

func rideLockKey(id string) string {
	return "ride:" + id
}

func driverLockKey(id string) string {
	return "driver:" + id
}

func riderLockKey(id string) string {
	return "rider:" + id
}

// withLock runs fn while holding key, returning busy if the key is taken.
// Locks are never waited on.
func withLock(ctx context.Context, locker Locker, logger *log.Logger, key string, busy error, fn func() error) error {
	ok, err := locker.Acquire(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return busy
	}
	defer func() {
		if err := locker.Release(ctx, key); err != nil {
			logger.Printf("release lock %s: %v", key, err)
		}
	}()
	return fn()
}

// LocalLocker is an in-process Locker. Services that touch the same entities
// must share one instance.
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocalLocker creates an empty LocalLocker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]struct{})}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return false, nil
	}
	l.held[key] = struct{}{}
	return true, nil
}

func (l *LocalLocker) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, key)
	return nil
}

var _ Locker = (*LocalLocker)(nil)
