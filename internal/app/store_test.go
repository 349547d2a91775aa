package app_test

import (
	"context"
	"encoding/json"
	"sync"

	"cairo_tours/internal/domain"
)

// ---- fakes ----

// fakeStore keeps rows as JSON-ish maps per table, newest first, and
// assigns ids the way the remote store would.
type fakeStore struct {
	mu        sync.Mutex
	tables    map[string][]map[string]any
	nextID    int64
	err       error // when set, every call fails
	lastPatch map[string]any
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][]map[string]any{}}
}

func (f *fakeStore) seed(table string, rows ...map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[table] = append(rows, f.tables[table]...)
	for _, r := range rows {
		if id := rowID(r); id > f.nextID {
			f.nextID = id
		}
	}
}

func (f *fakeStore) Select(ctx context.Context, table string, dst any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	return remarshal(f.tables[table], dst)
}

func (f *fakeStore) Insert(ctx context.Context, table string, row any, dst any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	m := toMap(row)
	f.nextID++
	m["id"] = f.nextID
	f.tables[table] = append([]map[string]any{m}, f.tables[table]...)
	if dst == nil {
		return nil
	}
	return remarshal(m, dst)
}

func (f *fakeStore) Update(ctx context.Context, table string, id int64, patch any, dst any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	p := toMap(patch)
	f.lastPatch = p
	for _, m := range f.tables[table] {
		if rowID(m) == id {
			for k, v := range p {
				m[k] = v
			}
			if dst == nil {
				return nil
			}
			return remarshal(m, dst)
		}
	}
	return domain.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, table string, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	rows := f.tables[table]
	for i, m := range rows {
		if rowID(m) == id {
			f.tables[table] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func toMap(v any) map[string]any {
	var m map[string]any
	b, _ := json.Marshal(v)
	_ = json.Unmarshal(b, &m)
	return m
}

func remarshal(src, dst any) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

func rowID(m map[string]any) int64 {
	if f, ok := m["id"].(float64); ok {
		return int64(f)
	}
	if i, ok := m["id"].(int64); ok {
		return i
	}
	return 0
}

type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

func hotelRow(id int64, name string) map[string]any {
	return map[string]any{
		"id": float64(id), "name": name, "location": "Cairo",
		"price": 150.0, "rating": 4.0, "description": "d",
	}
}
