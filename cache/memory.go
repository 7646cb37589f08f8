package cache

import (
	"context"
	"sync"

	"github.com/blogem/shift-cycles/models"
)

// Memory is an in-process layout cache with first-in first-out eviction.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]models.DayBuckets
	order      []string
	maxEntries int
}

// NewMemory creates an in-process cache holding at most maxEntries layouts.
// A non-positive maxEntries means unbounded.
func NewMemory(maxEntries int) *Memory {
	return &Memory{
		entries:    make(map[string]models.DayBuckets),
		maxEntries: maxEntries,
	}
}

// Get returns a copy of the cached layout for key
func (m *Memory) Get(_ context.Context, key string) (models.DayBuckets, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	buckets, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return buckets.Clone(), true
}

// Set stores a copy of the layout for key, evicting the oldest entry when full
func (m *Memory) Set(_ context.Context, key string, buckets models.DayBuckets) {
	buckets = buckets.Clone()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; exists {
		m.entries[key] = buckets
		return
	}

	if m.maxEntries > 0 && len(m.order) >= m.maxEntries {
		delete(m.entries, m.order[0])
		n := copy(m.order, m.order[1:])
		m.order[n] = ""
		m.order = m.order[:n]
	}

	m.entries[key] = buckets
	m.order = append(m.order, key)
}

// Len returns the number of cached layouts
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close drops all entries
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]models.DayBuckets)
	m.order = nil
	return nil
}
