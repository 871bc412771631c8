package heatmap

import (
	"time"

	"github.com/i474232898/temperature-heatmap/internal/chart"
	"github.com/i474232898/temperature-heatmap/internal/climate"
)

// Snapshot is one successful load together with the tree rendered from it.
type Snapshot struct {
	ID       string           `json:"id"`
	Source   string           `json:"source"`
	LoadedAt time.Time        `json:"loadedAt"` // always UTC
	Dataset  *climate.Dataset `json:"-"`
	Tree     chart.VisualTree `json:"-"`
}

// Summary describes a retained snapshot without its payload.
type Summary struct {
	ID       string    `json:"id"`
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
	Cells    int       `json:"cells"`
	MinYear  int       `json:"minYear,omitempty"`
	MaxYear  int       `json:"maxYear,omitempty"`
}

// Summary returns the payload-free view of s.
func (s Snapshot) Summary() Summary {
	return Summary{
		ID:       s.ID,
		Source:   s.Source,
		LoadedAt: s.LoadedAt,
		Cells:    len(s.Tree.Cells),
		MinYear:  s.Tree.MinYear,
		MaxYear:  s.Tree.MaxYear,
	}
}

// Store is the contract the snapshot store must satisfy. Save replaces the
// current snapshot; older ones are kept only as history.
type Store interface {
	Save(snapshot Snapshot)
	Latest() (Snapshot, error)
	History() []Snapshot
}
