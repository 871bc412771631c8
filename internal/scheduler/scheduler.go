package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/temperature-heatmap/internal/heatmap"
	"github.com/i474232898/temperature-heatmap/internal/logger"
)

// Refresher is the part of the heat map service the scheduler drives.
type Refresher interface {
	Refresh(ctx context.Context) error
}

var _ Refresher = (*heatmap.Service)(nil)

// Scheduler periodically reloads and re-renders the dataset.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Refresher
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. timeout bounds each run; zero means none.
func New(interval, timeout time.Duration, service Refresher) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
		timeout:   timeout,
	}
}

// Start schedules the refresh job. The first run happens one interval after
// start since the initial load is done by the caller. A zero interval
// schedules nothing.
func (s *Scheduler) Start() error {
	log := logger.GetLogger()
	if s.interval <= 0 {
		log.Infow("Periodic refresh disabled")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.run)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	log.Infow("Periodic refresh scheduled", "interval", s.interval)
	return nil
}

func (s *Scheduler) run() {
	log := logger.GetLogger()
	log.Debugw("Running dataset refresh job")

	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// Refresh logs its own failures.
	_ = s.service.Refresh(ctx)
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
