package store

import (
	"context"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// Entry is one key/record pair from an enumeration. Entries are returned in
// ascending key order so callers get a stable iteration order.
type Entry struct {
	Key    string
	Record *domain.UserRecord
}

// Store persists user records keyed by cleaned user identifier. Get and Set
// operate on independent copies: mutating a returned record has no effect
// until it is written back with Set.
type Store interface {
	Get(ctx context.Context, key string) (*domain.UserRecord, bool, error)
	Set(ctx context.Context, key string, record *domain.UserRecord) error
	Entries(ctx context.Context) ([]Entry, error)

	// Flush forces a durable write. The file store also saves periodically;
	// callers use Flush when a write must not wait for the next tick.
	Flush(ctx context.Context) error
	Close(ctx context.Context) error
}
