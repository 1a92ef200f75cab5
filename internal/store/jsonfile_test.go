package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

func testRecord(username string, totalXP int) *domain.UserRecord {
	return &domain.UserRecord{
		User:     domain.User{InternalID: username, Username: username},
		Leveling: domain.LevelingState{TotalXP: totalXP, Level: 1},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")

	fs, err := NewFileStore(path, 0)
	require.NoError(t, err)

	require.NoError(t, fs.Set(ctx, "alice", testRecord("alice", 150)))

	rec, ok, err := fs.Get(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 150, rec.Leveling.TotalXP)

	// Mutating the returned copy must not leak back into the store
	rec.Leveling.TotalXP = 9999
	again, ok, err := fs.Get(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 150, again.Leveling.TotalXP)

	require.NoError(t, fs.Close(ctx))

	// Reload from disk
	reopened, err := NewFileStore(path, 0)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	rec, ok, err = reopened.Get(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 150, rec.Leveling.TotalXP)
}

func TestFileStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "users.json"), 0)
	require.NoError(t, err)
	defer fs.Close(ctx)

	_, ok, err := fs.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_EntriesSortedByKey(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "users.json"), 0)
	require.NoError(t, err)
	defer fs.Close(ctx)

	require.NoError(t, fs.Set(ctx, "carol", testRecord("carol", 10)))
	require.NoError(t, fs.Set(ctx, "alice", testRecord("alice", 20)))
	require.NoError(t, fs.Set(ctx, "bob", testRecord("bob", 30)))

	entries, err := fs.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].Key)
	assert.Equal(t, "bob", entries[1].Key)
	assert.Equal(t, "carol", entries[2].Key)
}

func TestFileStore_FailedSaveStaysDirtyAndUnhealthy(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.Mkdir(dir, 0o755))
	path := filepath.Join(dir, "users.json")

	fs, err := NewFileStore(path, 0)
	require.NoError(t, err)

	require.NoError(t, fs.Set(ctx, "alice", testRecord("alice", 7)))

	// Take the directory away: the save fails and the store reports it.
	require.NoError(t, os.RemoveAll(dir))
	require.Error(t, fs.saveIfDirty())
	assert.Error(t, fs.CheckHealth(ctx))

	fs.mu.RLock()
	dirty := fs.dirty
	fs.mu.RUnlock()
	assert.True(t, dirty, "failed save must stay dirty so it is retried")

	// Restore the directory: the retry lands the write and clears the
	// health error.
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, fs.saveIfDirty())
	assert.NoError(t, fs.CheckHealth(ctx))

	reopened, err := NewFileStore(path, 0)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	rec, ok, err := reopened.Get(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, rec.Leveling.TotalXP)

	// Clean store: a further pass is a no-op and stays healthy.
	require.NoError(t, fs.saveIfDirty())
	assert.NoError(t, fs.CheckHealth(ctx))
	require.NoError(t, fs.Close(ctx))
}

func TestFileStore_FlushWritesImmediately(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")

	fs, err := NewFileStore(path, 0)
	require.NoError(t, err)

	require.NoError(t, fs.Set(ctx, "alice", testRecord("alice", 42)))
	require.NoError(t, fs.Flush(ctx))

	// A second store opened against the same file sees the flushed write
	other, err := NewFileStore(path, 0)
	require.NoError(t, err)
	defer other.Close(ctx)

	rec, ok, err := other.Get(ctx, "alice")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 42, rec.Leveling.TotalXP)

	require.NoError(t, fs.Close(ctx))
}
