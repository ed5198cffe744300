package handler

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type recalculateFine func(ctx context.Context, issueID string) (model.Issue, error)

// Consumer recalculates fines on request from kafka.RecalculateTopic.
// A message is marked even when recalculation fails: the next fine sweep retries it.
type Consumer struct {
	recalculate recalculateFine
	log         *zap.Logger
}

func NewConsumer(recalculate recalculateFine, log *zap.Logger) *Consumer {
	return &Consumer{
		recalculate: recalculate,
		log:         log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	var req kafka.EventRecalculate
	if err := json.Unmarshal(message.Value, &req); err != nil {
		consumer.log.Error("unmarshal recalculate request", zap.Error(err), zap.ByteString("value", message.Value))
		return
	}
	issue, err := consumer.recalculate(ctx, req.IssueID)
	if err != nil {
		consumer.log.Error("consumer.recalculate", zap.Error(err), zap.String("issue_id", req.IssueID))
		return
	}
	consumer.log.Debug("fine recalculated",
		zap.String("issue_id", issue.ID),
		zap.Stringer("fine", issue.FineAmount),
		zap.Int64("offset", message.Offset),
		zap.String("topic", message.Topic))
}
