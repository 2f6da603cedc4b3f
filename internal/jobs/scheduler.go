package jobs

import (
	"log/slog"
	"time"

	"rentwheels/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron runner for maintenance jobs.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(cfg config.Config, expiry *PaymentExpiryJob) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddJob(cfg.Payment.ExpireCron, expiry); err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("job scheduler started", "jobs", len(s.cron.Entries()))
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("job scheduler stopped")
}
