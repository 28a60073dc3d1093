package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps values in process memory. Used by tests and the
// ephemeral driver.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
	events broadcaster
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.data[key] = value
	m.mu.Unlock()

	m.events.publish(newEvent(key, OpSet))
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	delete(m.data, key)
	m.mu.Unlock()

	m.events.publish(newEvent(key, OpRemove))
	return nil
}

func (m *MemoryStore) Update(_ context.Context, key string, fn UpdateFunc) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	current, ok := m.data[key]
	next, err := fn(current, ok)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.data[key] = next
	m.mu.Unlock()

	m.events.publish(newEvent(key, OpSet))
	return nil
}

func (m *MemoryStore) Subscribe(ctx context.Context) <-chan Event {
	return m.events.subscribe(ctx)
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.events.close()
	return nil
}
