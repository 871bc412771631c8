package heatmap

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/i474232898/temperature-heatmap/internal/chart"
	"github.com/i474232898/temperature-heatmap/internal/climate"
	"github.com/i474232898/temperature-heatmap/internal/climate/loader"
	"github.com/i474232898/temperature-heatmap/internal/logger"
	"github.com/i474232898/temperature-heatmap/internal/metrics"
)

// Service runs the load → render pipeline and serves the current tree.
type Service struct {
	store     Store
	loader    climate.Loader
	container chart.Container
	metrics   *metrics.Metrics
	log       *zap.SugaredLogger

	mu sync.Mutex
}

// NewService creates a new Service.
func NewService(store Store, l climate.Loader, container chart.Container, m *metrics.Metrics) *Service {
	return &Service{
		store:     store,
		loader:    l,
		container: container,
		metrics:   m,
		log:       logger.GetLogger(),
	}
}

// Refresh loads the dataset once and, on success, renders and stores it.
// A failed load is logged and the previous snapshot, if any, stays current.
// The error is returned for callers that want it; nothing else depends on it.
func (s *Service) Refresh(ctx context.Context) error {
	ds, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.Loads.WithLabelValues(loadResult(err)).Inc()
		s.log.Errorw("Failed to load dataset",
			"loader", s.loader.Name(),
			"error", err,
		)
		return err
	}
	s.metrics.Loads.WithLabelValues(metrics.ResultSuccess).Inc()

	snap, rendered := s.Publish(ds)
	s.log.Infow("Dataset loaded",
		"snapshot", snap.ID,
		"observations", len(ds.MonthlyVariance),
		"rendered", rendered,
	)
	return nil
}

// Publish renders ds and makes it current. Publishing the dataset that is
// already current is a no-op; rendered reports whether a new tree was built.
func (s *Service) Publish(ds *climate.Dataset) (snap Snapshot, rendered bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if latest, err := s.store.Latest(); err == nil && latest.Dataset == ds {
		return latest, false
	}

	started := time.Now()
	tree := chart.Render(ds, s.container)
	s.metrics.ObserveRender(started, len(tree.Cells))

	snap = Snapshot{
		ID:       uuid.NewString(),
		Source:   s.loader.Name(),
		LoadedAt: time.Now().UTC(),
		Dataset:  ds,
		Tree:     tree,
	}
	s.store.Save(snap)
	return snap, true
}

// Latest delegates to the underlying store.
func (s *Service) Latest() (Snapshot, error) {
	return s.store.Latest()
}

// Tree returns the current tree, or an empty one when nothing is loaded.
func (s *Service) Tree() chart.VisualTree {
	snap, err := s.store.Latest()
	if err != nil {
		return chart.Render(nil, s.container)
	}
	return snap.Tree
}

// History returns summaries of the retained snapshots, oldest first.
func (s *Service) History() []Summary {
	snaps := s.store.History()
	out := make([]Summary, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, snap.Summary())
	}
	return out
}

// Hover reduces ev against the current tree.
func (s *Service) Hover(state chart.TooltipState, ev chart.HoverEvent) chart.TooltipState {
	s.metrics.HoverEvents.WithLabelValues(string(ev.Kind)).Inc()
	tree := s.Tree()
	return chart.ReduceTooltip(&tree, state, ev)
}

func loadResult(err error) string {
	var (
		ferr *loader.FetchError
		perr *loader.ParseError
	)
	switch {
	case errors.As(err, &ferr):
		return metrics.ResultFetchError
	case errors.As(err, &perr):
		return metrics.ResultParseError
	default:
		return metrics.ResultError
	}
}
