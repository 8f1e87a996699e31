package storage

import (
	"context"
	"sync"
	"time"

	"guarashopp-storefront/internal/domain"
)

type memoryEntry struct {
	value     string
	updatedAt time.Time
}

type memoryRepo struct {
	mu      sync.RWMutex
	entries map[string]map[string]memoryEntry
	now     func() time.Time
}

// NewMemory keeps client state in process memory. Used when no DB_DSN is configured and in tests.
func NewMemory() Repository {
	return &memoryRepo{
		entries: make(map[string]map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *memoryRepo) Get(_ context.Context, visitorID, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[visitorID][key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return e.value, nil
}

func (r *memoryRepo) Set(_ context.Context, visitorID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries[visitorID] == nil {
		r.entries[visitorID] = make(map[string]memoryEntry)
	}
	r.entries[visitorID][key] = memoryEntry{value: value, updatedAt: r.now()}
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, visitorID, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries[visitorID], key)
	if len(r.entries[visitorID]) == 0 {
		delete(r.entries, visitorID)
	}
	return nil
}

func (r *memoryRepo) DeleteIdle(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for visitor, keys := range r.entries {
		for key, e := range keys {
			if e.updatedAt.Before(before) {
				delete(keys, key)
				removed++
			}
		}
		if len(keys) == 0 {
			delete(r.entries, visitor)
		}
	}
	return removed, nil
}
