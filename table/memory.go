package table

import (
	"context"
	"sync"
)

// MemoryTable is an in-memory Table implementation for testing.
// Scan returns records in first-insertion order; a Put to an existing key
// replaces the row in place.
// Thread-safe for concurrent reads and writes.
type MemoryTable struct {
	mu      sync.RWMutex
	keyAttr string
	order   []string
	rows    map[string]Record
}

// NewMemoryTable creates an empty in-memory table keyed by keyAttr.
// An empty keyAttr selects DefaultKeyAttribute.
func NewMemoryTable(keyAttr string) *MemoryTable {
	if keyAttr == "" {
		keyAttr = DefaultKeyAttribute
	}
	return &MemoryTable{
		keyAttr: keyAttr,
		rows:    make(map[string]Record),
	}
}

// Scan returns a copy of every record.
func (m *MemoryTable) Scan(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Record, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, m.rows[key].Clone())
	}
	return out, nil
}

// Put stores a copy of rec under its primary key.
func (m *MemoryTable) Put(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := KeyOf(rec, m.keyAttr)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.rows[key]; !exists {
		m.order = append(m.order, key)
	}
	m.rows[key] = rec.Clone()
	return nil
}

// Len returns the number of records.
func (m *MemoryTable) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
