// Package audit ships circulation events out of the service.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type KafkaPublisher struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
	topic    string
	log      *zap.Logger
}

type Option func(p *KafkaPublisher)

func WithTopic(topic string) Option {
	return func(p *KafkaPublisher) {
		p.topic = topic
	}
}

func WithCircuitBreaker(cb circuit_breaker.CircuitBreaker) Option {
	return func(p *KafkaPublisher) {
		p.cb = cb
	}
}

func NewKafkaPublisher(producer sarama.SyncProducer, log *zap.Logger, opts ...Option) *KafkaPublisher {
	p := &KafkaPublisher{
		producer: producer,
		cb:       circuit_breaker.New(100, time.Second, 0.2, 2),
		topic:    kafka.CirculationTopic,
		log:      log.Named("audit"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends event keyed by issue id so events of one issue stay ordered.
// While the broker keeps failing the breaker rejects events with circuit_breaker.ErrOpenCB.
func (p *KafkaPublisher) Publish(_ context.Context, event kafka.EventCirculation) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{Topic: p.topic, Value: sarama.ByteEncoder(data)}
	if event.IssueID != "" {
		msg.Key = sarama.StringEncoder(event.IssueID)
	}
	return p.cb.Call(func() error {
		if _, _, err := p.producer.SendMessage(msg); err != nil {
			return errors.Wrap(err, "producer.SendMessage")
		}
		return nil
	})
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// LogPublisher writes events to the log. Used when kafka is disabled.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log.Named("audit")}
}

func (p *LogPublisher) Publish(_ context.Context, event kafka.EventCirculation) error {
	fields := []zap.Field{
		zap.String("type", string(event.EventType)),
		zap.Time("timestamp", event.Timestamp),
		zap.String("issueID", event.IssueID),
		zap.String("bookID", event.BookID),
		zap.String("userID", event.UserID),
		zap.String("actorID", event.ActorID),
	}
	if event.Amount != nil {
		fields = append(fields, zap.Stringer("amount", event.Amount))
	}
	p.log.Info("circulation event", fields...)
	return nil
}
