package document

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kailas-cloud/bonfire/internal/db"
	"github.com/kailas-cloud/bonfire/internal/domain"
)

// mockStore implements the consumer interface for tests.
// Unset hooks fall back to an in-memory map.
type mockStore struct {
	mu   sync.Mutex
	data map[string][]byte

	jsonSetFn  func(ctx context.Context, key string, data []byte) error
	jsonGetFn  func(ctx context.Context, key string) ([]byte, error)
	jsonMGetFn func(ctx context.Context, keys []string) ([][]byte, error)
	delFn      func(ctx context.Context, key string) (bool, error)
	scanFn     func(ctx context.Context, prefix string) ([]string, error)

	mgetCalls int
}

func (m *mockStore) JSONSet(ctx context.Context, key string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) JSONMGet(ctx context.Context, keys []string) ([][]byte, error) {
	m.mu.Lock()
	m.mgetCalls++
	m.mu.Unlock()
	if m.jsonMGetFn != nil {
		return m.jsonMGetFn(ctx, keys)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = m.data[k]
	}
	return out, nil
}

func (m *mockStore) Del(ctx context.Context, key string) (bool, error) {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	delete(m.data, key)
	return ok, nil
}

func (m *mockStore) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func (m *mockStore) ScanPrefix(ctx context.Context, prefix string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, prefix)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

type itemRepo = Repo[domain.Item, domain.ItemPatch, *domain.Item]

func newTestRepo(t *testing.T) (*itemRepo, *mockStore) {
	t.Helper()
	ms := &mockStore{data: make(map[string][]byte)}
	repo := New[domain.Item, domain.ItemPatch](ms, "bonfire:", domain.CollectionItems)
	repo.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return repo, ms
}

func testItem(title string) *domain.Item {
	return &domain.Item{
		Title:     title,
		Price:     19.99,
		Platforms: []string{"pc"},
		TagNames:  []string{"roguelike"},
	}
}
