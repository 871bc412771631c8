package store

import (
	"errors"
	"sync"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

var (
	// ErrNotFound is returned when no dataset has been loaded yet.
	ErrNotFound = errors.New("no dataset loaded")
)

// MemoryStore is a concurrency-safe in-memory snapshot store.
type MemoryStore struct {
	mu sync.RWMutex

	// oldest first; the last entry is current
	snapshots []heatmap.Snapshot

	maxHistory int // max number of snapshots retained
}

// NewMemoryStore creates a new MemoryStore.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int) *MemoryStore {
	return &MemoryStore{maxHistory: maxHistory}
}

// Save makes snapshot current and enforces retention.
func (s *MemoryStore) Save(snapshot heatmap.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, snapshot)

	if s.maxHistory > 0 && len(s.snapshots) > s.maxHistory {
		over := len(s.snapshots) - s.maxHistory
		s.snapshots = append([]heatmap.Snapshot(nil), s.snapshots[over:]...)
	}
}

// Latest returns the current snapshot.
func (s *MemoryStore) Latest() (heatmap.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.snapshots) == 0 {
		return heatmap.Snapshot{}, ErrNotFound
	}
	return s.snapshots[len(s.snapshots)-1], nil
}

// History returns a copy of the retained snapshots, oldest first.
func (s *MemoryStore) History() []heatmap.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]heatmap.Snapshot(nil), s.snapshots...)
}
