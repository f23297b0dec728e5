package mocks

import (
	"context"
	"fmt"
	"sync"
)

// MockKVStore is an in-memory mock implementation of usecase.KVStore.
// GetFunc/SetFunc override the default map-backed behavior when set.
type MockKVStore struct {
	mu   sync.RWMutex
	data map[string]string

	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string) error

	setCalls int
}

func NewMockKVStore() *MockKVStore {
	return &MockKVStore{
		data: make(map[string]string),
	}
}

func (m *MockKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *MockKVStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.data[key] = value
	return nil
}

// Seed stores a raw payload directly, bypassing SetFunc and call counting.
func (m *MockKVStore) Seed(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Raw returns the stored payload for key, bypassing GetFunc.
func (m *MockKVStore) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok
}

// SetCalls reports how many times Set was invoked.
func (m *MockKVStore) SetCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.setCalls
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator. Without
// GenerateFunc it yields sequential ids ("id-1", "id-2", ...).
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockChangeNotifier counts data-change notifications.
type MockChangeNotifier struct {
	mu    sync.Mutex
	calls int
}

func NewMockChangeNotifier() *MockChangeNotifier {
	return &MockChangeNotifier{}
}

// DataChanged records one notification. A nil receiver is a no-op, so a
// typed nil stored in a ChangeNotifier interface stays harmless.
func (m *MockChangeNotifier) DataChanged() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
}

// Calls reports how many notifications were delivered.
func (m *MockChangeNotifier) Calls() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
