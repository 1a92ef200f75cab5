package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deremos/RealmBot_Go/internal/concurrency"
	"github.com/deremos/RealmBot_Go/internal/domain"
	"github.com/deremos/RealmBot_Go/internal/logger"
	"github.com/deremos/RealmBot_Go/internal/store"
)

// Repository is the single accessor both engines go through. Every write is a
// locked read-merge-write of the whole record, so the leveling engine never
// clobbers the adventure namespace and vice versa.
type Repository struct {
	store store.Store
	locks *concurrency.LockManager
	cache *recordCache
	now   func() time.Time
}

// NewRepository creates a Repository over the given store.
func NewRepository(st store.Store) *Repository {
	return &Repository{
		store: st,
		locks: concurrency.NewLockManager(),
		cache: newRecordCache(DefaultCacheSize, DefaultCacheTTL),
		now:   time.Now,
	}
}

// SetNowFunc overrides the clock, for deterministic tests.
func (r *Repository) SetNowFunc(now func() time.Time) {
	r.now = now
}

// Key normalizes a raw user identifier into a store key: platform suffixes
// (anything after '@') are stripped and the remainder lowercased.
func Key(userID string) string {
	if i := strings.IndexByte(userID, '@'); i >= 0 {
		userID = userID[:i]
	}
	return strings.ToLower(strings.TrimSpace(userID))
}

// Get returns a clone of the record, or (nil, false) when the user is unknown.
// Pure read: no record is created.
func (r *Repository) Get(ctx context.Context, userID string) (*domain.UserRecord, bool, error) {
	key := Key(userID)
	if rec, ok := r.cache.Get(key); ok {
		return rec, true, nil
	}

	rec, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("get record %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}
	r.cache.Set(key, rec)
	return rec, true, nil
}

// GetOrCreate returns the record for userID, lazily creating it with default
// leveling state. A non-empty username updates the stored display name.
func (r *Repository) GetOrCreate(ctx context.Context, userID, username string) (*domain.UserRecord, error) {
	return r.Update(ctx, userID, func(rec *domain.UserRecord) error {
		if username != "" && rec.User.Username != username {
			rec.User.Username = username
		}
		return nil
	})
}

// Update runs mutate against a clone of the record (creating the record with
// defaults first if absent) and writes the result back, all under the
// per-user lock. Returns the record as written.
func (r *Repository) Update(ctx context.Context, userID string, mutate func(*domain.UserRecord) error) (*domain.UserRecord, error) {
	key := Key(userID)
	var result *domain.UserRecord

	err := r.locks.WithLock(key, func() error {
		rec, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("get record %s: %w", key, err)
		}
		if !ok {
			rec = r.newRecord(key)
			logger.FromContext(ctx).Info("Created user record", "key", key)
		}

		if err := mutate(rec); err != nil {
			return err
		}

		if err := r.store.Set(ctx, key, rec); err != nil {
			r.cache.Invalidate(key)
			return fmt.Errorf("set record %s: %w", key, err)
		}
		r.cache.Set(key, rec)
		result = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Entries enumerates all records in key order.
func (r *Repository) Entries(ctx context.Context) ([]store.Entry, error) {
	return r.store.Entries(ctx)
}

// Flush forces a durable store write.
func (r *Repository) Flush(ctx context.Context) error {
	return r.store.Flush(ctx)
}

func (r *Repository) newRecord(key string) *domain.UserRecord {
	now := r.now().UnixMilli()
	return &domain.UserRecord{
		User: domain.User{InternalID: key},
		Leveling: domain.LevelingState{
			Level:        1,
			JoinedAt:     now,
			LastActiveAt: now,
		},
	}
}
