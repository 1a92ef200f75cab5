package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// MemoryStore is an in-memory Store used by tests and the debug tool. It has
// the same copy-on-access semantics as FileStore.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]json.RawMessage

	// FailWrites makes Set return a storage error, for failure-path tests.
	FailWrites bool
	FlushCount int
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]json.RawMessage)}
}

func (ms *MemoryStore) Get(_ context.Context, key string) (*domain.UserRecord, bool, error) {
	ms.mu.RLock()
	raw, ok := ms.records[key]
	ms.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	var rec domain.UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false, fmt.Errorf("%w: decode record %s: %v", domain.ErrStoreFailure, key, err)
	}
	return &rec, true, nil
}

func (ms *MemoryStore) Set(_ context.Context, key string, record *domain.UserRecord) error {
	if ms.FailWrites {
		return fmt.Errorf("%w: writes disabled", domain.ErrStoreFailure)
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode record %s: %v", domain.ErrStoreFailure, key, err)
	}
	ms.mu.Lock()
	ms.records[key] = raw
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) Entries(_ context.Context) ([]Entry, error) {
	ms.mu.RLock()
	keys := make([]string, 0, len(ms.records))
	for k := range ms.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		var rec domain.UserRecord
		if err := json.Unmarshal(ms.records[k], &rec); err != nil {
			ms.mu.RUnlock()
			return nil, fmt.Errorf("%w: decode record %s: %v", domain.ErrStoreFailure, k, err)
		}
		entries = append(entries, Entry{Key: k, Record: &rec})
	}
	ms.mu.RUnlock()
	return entries, nil
}

func (ms *MemoryStore) Flush(_ context.Context) error {
	ms.mu.Lock()
	ms.FlushCount++
	ms.mu.Unlock()
	return nil
}

func (ms *MemoryStore) CheckHealth(_ context.Context) error {
	if ms.FailWrites {
		return fmt.Errorf("%w: writes disabled", domain.ErrStoreFailure)
	}
	return nil
}

func (ms *MemoryStore) Close(_ context.Context) error { return nil }
