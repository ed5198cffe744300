package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/Astemirdum/library-circulation/circulation/internal/service"

// EventPublisher receives circulation events after the state change commits.
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.EventCirculation) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, kafka.EventCirculation) error { return nil }

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events EventPublisher
	now    func() time.Time
	tracer trace.Tracer
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("service"),
		repo:   repo,
		events: nopPublisher{},
		now:    time.Now,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "Service."+name, trace.WithAttributes(attrs...))
}

// finish records err on span and ends it. It returns err unchanged.
func finish(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
	return err
}

func (s *Service) publish(ctx context.Context, event kafka.EventCirculation) {
	event.Timestamp = s.clock()
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("publish circulation event",
			zap.String("type", string(event.EventType)),
			zap.String("issueID", event.IssueID),
			zap.Error(err))
	}
}

func validateIDs(ids ...string) error {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return errs.ErrInvalidID
		}
	}
	return nil
}
