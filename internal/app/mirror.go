package app

import (
	"context"
	"sync"

	"cairo_tours/internal/domain"
)

// Mirror holds the local, newest-first copy of one remote table. The
// store stays the source of truth: a mutation takes effect locally
// only with the row the store returned, and a failed call leaves the
// copy byte-for-byte as it was.
type Mirror[T domain.Row] struct {
	store  domain.TableStore
	cache  domain.Cache
	table  string
	ttlSec int

	mu     sync.RWMutex
	items  []T
	err    error
	loaded bool
}

func NewMirror[T domain.Row](store domain.TableStore, cache domain.Cache, table string, ttlSec int) *Mirror[T] {
	return &Mirror[T]{store: store, cache: cache, table: table, ttlSec: ttlSec}
}

func (m *Mirror[T]) Table() string { return m.table }

// Items returns a copy of the current rows, newest first.
func (m *Mirror[T]) Items() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Loaded reports whether at least one remote fetch has succeeded.
// Snapshot-seeded contents do not count as loaded.
func (m *Mirror[T]) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Err returns the error of the last refresh, nil after a success.
func (m *Mirror[T]) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

// Refresh fetches the full table. On success the contents are
// replaced wholesale; on failure the previous contents are kept and
// the error is recorded for the status endpoint.
func (m *Mirror[T]) Refresh(ctx context.Context) error {
	var rows []T
	if err := m.store.Select(ctx, m.table, &rows); err != nil {
		m.mu.Lock()
		m.err = err
		m.mu.Unlock()
		return err
	}
	m.mu.Lock()
	m.items = rows
	m.err = nil
	m.loaded = true
	m.mu.Unlock()
	m.saveSnapshot(ctx)
	return nil
}

// Add inserts a row and prepends the row the store returned, id
// included.
func (m *Mirror[T]) Add(ctx context.Context, row T) (T, error) {
	var created T
	if err := m.store.Insert(ctx, m.table, row, &created); err != nil {
		var zero T
		return zero, err
	}
	m.mu.Lock()
	m.items = append([]T{created}, m.items...)
	m.mu.Unlock()
	m.saveSnapshot(ctx)
	return created, nil
}

// Update patches the row matching id and replaces the local entry in
// place, position unchanged.
func (m *Mirror[T]) Update(ctx context.Context, id int64, patch any) (T, error) {
	var updated T
	if err := m.store.Update(ctx, m.table, id, patch, &updated); err != nil {
		var zero T
		return zero, err
	}
	m.mu.Lock()
	for i := range m.items {
		if m.items[i].RowID() == id {
			m.items[i] = updated
			break
		}
	}
	m.mu.Unlock()
	m.saveSnapshot(ctx)
	return updated, nil
}

// Delete removes the row matching id; remaining rows keep their order.
func (m *Mirror[T]) Delete(ctx context.Context, id int64) error {
	if err := m.store.Delete(ctx, m.table, id); err != nil {
		return err
	}
	m.mu.Lock()
	kept := m.items[:0]
	for _, it := range m.items {
		if it.RowID() != id {
			kept = append(kept, it)
		}
	}
	m.items = kept
	m.mu.Unlock()
	m.saveSnapshot(ctx)
	return nil
}

// LoadSnapshot seeds the mirror from the cached snapshot so stale
// data can be served while the first remote refresh runs. No-op once
// a real fetch has landed.
func (m *Mirror[T]) LoadSnapshot(ctx context.Context) bool {
	if m.cache == nil {
		return false
	}
	var rows []T
	ok, err := m.cache.Get(ctx, m.snapshotKey(), &rows)
	if err != nil || !ok {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loaded {
		return false
	}
	m.items = rows
	return true
}

func (m *Mirror[T]) saveSnapshot(ctx context.Context) {
	if m.cache == nil {
		return
	}
	_ = m.cache.Set(ctx, m.snapshotKey(), m.Items(), m.ttlSec)
}

func (m *Mirror[T]) snapshotKey() string { return "catalog:" + m.table }
