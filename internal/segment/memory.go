package segment

import "sync"

// Memory is an in-process build context. All operations are
// concurrency-safe so layer builds can mark layouts from multiple workers.
type Memory struct {
	mutex sync.RWMutex
	rows  map[int64]int64
}

// NewMemory creates an empty in-memory segment.
func NewMemory() *Memory {
	return &Memory{rows: make(map[int64]int64)}
}

// MarkBuilt records the layout as materialized with the given row count.
// Re-marking a layout overwrites its previous count.
func (m *Memory) MarkBuilt(layoutID, rowCount int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.rows[layoutID] = rowCount
	return nil
}

// IsBuilt reports whether the layout has been materialized.
func (m *Memory) IsBuilt(layoutID int64) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.rows[layoutID]
	return ok
}

// RowCount returns the recorded row count, and whether the layout was
// built at all.
func (m *Memory) RowCount(layoutID int64) (int64, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	rows, ok := m.rows[layoutID]
	return rows, ok
}
