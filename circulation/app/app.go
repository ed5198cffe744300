package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/audit"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/internal/scheduler"
	"github.com/Astemirdum/library-circulation/circulation/internal/server"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/circulation/migrations"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/Astemirdum/library-circulation/pkg/tracing"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	SweepFines   = "fines"
	SweepOverdue = "overdue"

	shutdownTimeout = 5 * time.Second
)

// Run serves the HTTP API, the scheduler and the recalculation consumer until SIGINT or SIGTERM.
func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.NewProvider(ctx, cfg.Tracing)
	if err != nil {
		return errors.Wrap(err, "tracing.NewProvider")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(closeCtx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return errors.Wrap(err, "db init")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return errors.Wrap(err, "repo")
	}
	publisher, closePublisher, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closePublisher(); err != nil {
			log.Warn("publisher close", zap.Error(err))
		}
	}()
	svc := service.NewService(repo, log, service.WithEventPublisher(publisher))
	sweeper := scheduler.NewSweeper(svc, log, cfg.Scheduler.FineSweepWorkers)

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Scheduler.Enable {
		sched := scheduler.New(sweeper, cfg.Scheduler, log)
		g.Go(func() error {
			return sched.Run(gctx)
		})
	}
	if cfg.Kafka.Enable {
		group, err := kafka.NewConsumer(cfg.Kafka, kafka.CirculationConsumerGroup)
		if err != nil {
			return errors.Wrap(err, "kafka.NewConsumer")
		}
		consumer := handler.NewConsumer(svc.RecalculateFine, log)
		g.Go(func() error {
			return kafka.Consume(gctx, group, consumer, log, kafka.RecalculateTopic)
		})
	}

	h := handler.New(svc, sweeper, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("Graceful shutdown")
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(closeCtx)
	})

	runErr := g.Wait()
	log.Info("Graceful shutdown finished")
	return runErr
}

// Migrate applies the embedded migrations and exits.
func Migrate(ctx context.Context, cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	db, err := postgres.Connect(ctx, &cfg.Database)
	if err != nil {
		return errors.Wrap(err, "db connect")
	}
	defer db.Close()
	if err = postgres.Migrate(ctx, db, migrations.MigrationFiles); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}

// Sweep runs one sweep of the given kind and returns its result.
func Sweep(ctx context.Context, cfg *config.Config, kind string) (any, error) {
	log := logger.NewLogger(cfg.Log, "circulation")
	db, err := postgres.Connect(ctx, &cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "db connect")
	}
	defer db.Close()
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return nil, errors.Wrap(err, "repo")
	}
	publisher, closePublisher, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := closePublisher(); err != nil {
			log.Warn("publisher close", zap.Error(err))
		}
	}()
	svc := service.NewService(repo, log, service.WithEventPublisher(publisher))
	sweeper := scheduler.NewSweeper(svc, log, cfg.Scheduler.FineSweepWorkers)

	switch kind {
	case SweepFines:
		return sweeper.SweepFines(ctx)
	case SweepOverdue:
		return sweeper.SweepOverdue(ctx)
	default:
		return nil, errors.Errorf("unknown sweep %q", kind)
	}
}

func newPublisher(cfg kafka.Config, log *zap.Logger) (service.EventPublisher, func() error, error) {
	if !cfg.Enable {
		return audit.NewLogPublisher(log), func() error { return nil }, nil
	}
	producer, err := kafka.NewSyncProducer(cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "kafka.NewSyncProducer")
	}
	p := audit.NewKafkaPublisher(producer, log)
	return p, p.Close, nil
}
