package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/deremos/RealmBot_Go/internal/domain"
)

// FileStore keeps all records in memory as raw JSON and writes the whole map
// to a single file. Saves happen on a timer when the map is dirty and on
// explicit Flush. Records are serialized on Set and deserialized on Get so
// callers never share memory with the store.
type FileStore struct {
	path     string
	interval time.Duration

	mu      sync.RWMutex
	records map[string]json.RawMessage
	dirty   bool
	gen     uint64
	saveErr error

	stop chan struct{}
	done chan struct{}
}

// NewFileStore loads the file at path (an absent file starts empty) and
// begins the autosave loop. interval <= 0 disables periodic saves, leaving
// only explicit Flush and Close.
func NewFileStore(path string, interval time.Duration) (*FileStore, error) {
	fs := &FileStore{
		path:     path,
		interval: interval,
		records:  make(map[string]json.RawMessage),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &fs.records); err != nil {
			return nil, fmt.Errorf("parse store file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// first run
	default:
		return nil, fmt.Errorf("read store file %s: %w", path, err)
	}

	go fs.autosaveLoop()
	return fs, nil
}

func (fs *FileStore) autosaveLoop() {
	defer close(fs.done)
	if fs.interval <= 0 {
		<-fs.stop
		return
	}
	ticker := time.NewTicker(fs.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := fs.saveIfDirty(); err != nil {
				slog.Error("Autosave failed", "path", fs.path, "error", err)
			}
		case <-fs.stop:
			return
		}
	}
}

// Get returns a fresh copy of the record for key.
func (fs *FileStore) Get(_ context.Context, key string) (*domain.UserRecord, bool, error) {
	fs.mu.RLock()
	raw, ok := fs.records[key]
	fs.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	var rec domain.UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false, fmt.Errorf("%w: decode record %s: %v", domain.ErrStoreFailure, key, err)
	}
	return &rec, true, nil
}

// Set serializes the record and marks the store dirty for the next autosave.
func (fs *FileStore) Set(_ context.Context, key string, record *domain.UserRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode record %s: %v", domain.ErrStoreFailure, key, err)
	}

	fs.mu.Lock()
	fs.records[key] = raw
	fs.dirty = true
	fs.gen++
	fs.mu.Unlock()
	return nil
}

// Entries returns every record, sorted by key.
func (fs *FileStore) Entries(_ context.Context) ([]Entry, error) {
	fs.mu.RLock()
	keys := make([]string, 0, len(fs.records))
	for k := range fs.records {
		keys = append(keys, k)
	}
	raws := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		raws[k] = fs.records[k]
	}
	fs.mu.RUnlock()

	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		var rec domain.UserRecord
		if err := json.Unmarshal(raws[k], &rec); err != nil {
			return nil, fmt.Errorf("%w: decode record %s: %v", domain.ErrStoreFailure, k, err)
		}
		entries = append(entries, Entry{Key: k, Record: &rec})
	}
	return entries, nil
}

// Flush writes the file immediately regardless of the dirty flag.
func (fs *FileStore) Flush(_ context.Context) error {
	return fs.save()
}

// CheckHealth reports the outcome of the most recent save attempt, so
// readiness probes surface a store that can no longer reach its file. A
// failed save keeps the store dirty, so the error stands until a later
// attempt actually lands.
func (fs *FileStore) CheckHealth(_ context.Context) error {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.saveErr
}

// Close stops the autosave loop and performs a final save.
func (fs *FileStore) Close(_ context.Context) error {
	close(fs.stop)
	<-fs.done
	return fs.save()
}

func (fs *FileStore) saveIfDirty() error {
	fs.mu.RLock()
	dirty := fs.dirty
	fs.mu.RUnlock()
	if !dirty {
		return nil
	}
	return fs.save()
}

// save snapshots the records and writes them out, recording the outcome for
// CheckHealth. The dirty flag clears only once the rename lands and no Set
// raced the snapshot, so a failed save is retried on the next tick.
func (fs *FileStore) save() error {
	fs.mu.Lock()
	data, err := json.MarshalIndent(fs.records, "", "  ")
	gen := fs.gen
	fs.mu.Unlock()

	if err != nil {
		err = fmt.Errorf("%w: encode store: %v", domain.ErrStoreFailure, err)
	} else {
		err = fs.writeFile(data)
	}

	fs.mu.Lock()
	fs.saveErr = err
	if err == nil && fs.gen == gen {
		fs.dirty = false
	}
	fs.mu.Unlock()
	return err
}

// writeFile writes to a temp file in the same directory and renames it over
// the target so a crash mid-write never truncates existing data.
func (fs *FileStore) writeFile(data []byte) error {
	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(fs.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", domain.ErrStoreFailure, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", domain.ErrStoreFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", domain.ErrStoreFailure, err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace store file: %v", domain.ErrStoreFailure, err)
	}
	return nil
}
