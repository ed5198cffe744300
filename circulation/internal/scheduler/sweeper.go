package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate go run github.com/golang/mock/mockgen -source=sweeper.go -destination=mocks/mock.go

type Circulation interface {
	ListOpenIssueIDs(ctx context.Context) ([]string, error)
	RecalculateFine(ctx context.Context, issueID string) (model.Issue, error)
	MarkOverdueIssues(ctx context.Context) (model.OverdueSweepResult, error)
}

const meterName = "github.com/Astemirdum/library-circulation/circulation/internal/scheduler"

type Sweeper struct {
	svc     Circulation
	log     *zap.Logger
	workers int

	recalculated metric.Int64Counter
	failed       metric.Int64Counter
	marked       metric.Int64Counter
}

func NewSweeper(svc Circulation, log *zap.Logger, workers int) *Sweeper {
	if workers < 1 {
		workers = 1
	}
	s := &Sweeper{
		svc:     svc,
		log:     log.Named("sweeper"),
		workers: workers,
	}
	meter := otel.Meter(meterName)
	s.recalculated = s.counter(meter, "circulation.fine_sweep.recalculated", "issues whose fine was recalculated")
	s.failed = s.counter(meter, "circulation.fine_sweep.failed", "issues the fine sweep could not recalculate")
	s.marked = s.counter(meter, "circulation.overdue_sweep.marked", "issues moved to OVERDUE")
	return s
}

func (s *Sweeper) counter(meter metric.Meter, name, desc string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil {
		s.log.Warn("create counter", zap.String("name", name), zap.Error(err))
		return noop.Int64Counter{}
	}
	return c
}

// SweepFines recalculates every open issue, each in its own transaction.
// A failing or panicking issue is logged and counted, the rest still run.
func (s *Sweeper) SweepFines(ctx context.Context) (model.SweepResult, error) {
	started := time.Now()
	ids, err := s.svc.ListOpenIssueIDs(ctx)
	if err != nil {
		return model.SweepResult{}, fmt.Errorf("list open issues: %w", err)
	}

	var recalculated, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		id := id
		g.Go(func() error {
			if err := s.recalculate(ctx, id); err != nil {
				failed.Add(1)
				s.log.Error("recalculate fine", zap.String("issueID", id), zap.Error(err))
				return nil
			}
			recalculated.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	res := model.SweepResult{
		Total:        len(ids),
		Recalculated: int(recalculated.Load()),
		Failed:       int(failed.Load()),
	}
	s.recalculated.Add(ctx, int64(res.Recalculated))
	s.failed.Add(ctx, int64(res.Failed))
	s.log.Info("fine sweep finished",
		zap.Int("total", res.Total),
		zap.Int("recalculated", res.Recalculated),
		zap.Int("failed", res.Failed),
		zap.Duration("took", time.Since(started)))
	return res, ctx.Err()
}

func (s *Sweeper) recalculate(ctx context.Context, issueID string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	_, err = s.svc.RecalculateFine(ctx, issueID)
	return err
}

func (s *Sweeper) SweepOverdue(ctx context.Context) (model.OverdueSweepResult, error) {
	res, err := s.svc.MarkOverdueIssues(ctx)
	if err != nil {
		return model.OverdueSweepResult{}, fmt.Errorf("mark overdue: %w", err)
	}
	s.marked.Add(ctx, res.Marked)
	s.log.Info("overdue sweep finished", zap.Int64("marked", res.Marked))
	return res, nil
}
