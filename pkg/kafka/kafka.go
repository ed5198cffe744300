package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	CirculationTopic = "circulation.events"
	RecalculateTopic = "circulation.recalculate"

	CirculationConsumerGroup = "circulation-recalculate"
)

type Config struct {
	Enable bool     `envconfig:"KAFKA_ENABLE" default:"false"`
	Addrs  []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

type EventType string

const (
	EventBookIssued       EventType = "BOOK_ISSUED"
	EventBookReturned     EventType = "BOOK_RETURNED"
	EventFineRecalculated EventType = "FINE_RECALCULATED"
	EventFinePaid         EventType = "FINE_PAID"
	EventFineWaived       EventType = "FINE_WAIVED"
	EventFineConfigured   EventType = "FINE_CONFIGURED"
	EventIssueOverdue     EventType = "ISSUE_OVERDUE"
)

// EventCirculation is published to CirculationTopic after a state change commits.
type EventCirculation struct {
	Timestamp time.Time        `json:"timestamp"`
	EventType EventType        `json:"eventType"`
	IssueID   string           `json:"issueId,omitempty"`
	BookID    string           `json:"bookId,omitempty"`
	UserID    string           `json:"userId,omitempty"`
	ActorID   string           `json:"actorId,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
}

// EventRecalculate asks the consumer to recalculate the fine of one issue.
type EventRecalculate struct {
	IssueID string `json:"issueId"`
}

func NewSyncProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume blocks until ctx is done, rejoining the group after every rebalance.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) error {
	defer func() {
		if err := group.Close(); err != nil {
			log.Warn("consumer group close", zap.Error(err))
		}
	}()
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			log.Error("consumer group consume", zap.Error(err), zap.Strings("topics", topics))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}
