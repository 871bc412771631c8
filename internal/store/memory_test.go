package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

func TestLatestEmpty(t *testing.T) {
	_, err := NewMemoryStore(3).Latest()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, NewMemoryStore(3).History())
}

func TestSaveReplacesCurrent(t *testing.T) {
	s := NewMemoryStore(3)
	s.Save(heatmap.Snapshot{ID: "a"})
	s.Save(heatmap.Snapshot{ID: "b"})

	latest, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, "b", latest.ID)
}

func TestRetention(t *testing.T) {
	s := NewMemoryStore(2)
	for _, id := range []string{"a", "b", "c"} {
		s.Save(heatmap.Snapshot{ID: id})
	}

	hist := s.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "b", hist[0].ID)
	assert.Equal(t, "c", hist[1].ID)
}

func TestUnlimitedRetention(t *testing.T) {
	s := NewMemoryStore(0)
	for i := 0; i < 10; i++ {
		s.Save(heatmap.Snapshot{})
	}
	assert.Len(t, s.History(), 10)
}
