package scheduler

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"go.uber.org/zap"
)

type Config struct {
	Enable               bool          `envconfig:"SCHEDULER_ENABLE" default:"true"`
	FineSweepInterval    time.Duration `envconfig:"FINE_SWEEP_INTERVAL" default:"24h"`
	OverdueSweepInterval time.Duration `envconfig:"OVERDUE_SWEEP_INTERVAL" default:"1h"`
	FineSweepWorkers     int           `envconfig:"FINE_SWEEP_WORKERS" default:"4"`
	RunOnStart           bool          `envconfig:"SCHEDULER_RUN_ON_START" default:"false"`
}

type Sweeps interface {
	SweepFines(ctx context.Context) (model.SweepResult, error)
	SweepOverdue(ctx context.Context) (model.OverdueSweepResult, error)
}

var _ Sweeps = (*Sweeper)(nil)

// Scheduler fires both sweeps from a single loop, so at most one sweep runs at a time.
type Scheduler struct {
	sweeps    Sweeps
	cfg       Config
	log       *zap.Logger
	newTicker TickerFactory
}

type Option func(s *Scheduler)

func WithTickerFactory(f TickerFactory) Option {
	return func(s *Scheduler) {
		s.newTicker = f
	}
}

func New(sweeps Sweeps, cfg Config, log *zap.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		sweeps:    sweeps,
		cfg:       cfg,
		log:       log.Named("scheduler"),
		newTicker: NewTimeTicker,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	fineTicker := s.newTicker(s.cfg.FineSweepInterval)
	defer fineTicker.Stop()
	overdueTicker := s.newTicker(s.cfg.OverdueSweepInterval)
	defer overdueTicker.Stop()

	s.log.Info("scheduler started",
		zap.Duration("fineSweepInterval", s.cfg.FineSweepInterval),
		zap.Duration("overdueSweepInterval", s.cfg.OverdueSweepInterval))

	if s.cfg.RunOnStart {
		s.overdue(ctx)
		s.fines(ctx)
	}
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return nil
		case <-overdueTicker.C():
			s.overdue(ctx)
		case <-fineTicker.C():
			s.fines(ctx)
		}
	}
}

func (s *Scheduler) fines(ctx context.Context) {
	if _, err := s.sweeps.SweepFines(ctx); err != nil {
		s.log.Error("fine sweep", zap.Error(err))
	}
}

func (s *Scheduler) overdue(ctx context.Context) {
	if _, err := s.sweeps.SweepOverdue(ctx); err != nil {
		s.log.Error("overdue sweep", zap.Error(err))
	}
}
