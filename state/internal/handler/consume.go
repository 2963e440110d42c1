package handler

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-desk/pkg/kafka"
	"github.com/Astemirdum/library-desk/state/internal/errs"
)

type saveState func(ctx context.Context, data []byte, version int64) error

// Consumer applies snapshots the desk enqueued while the HTTP endpoint was unreachable.
type Consumer struct {
	saveStateHandler saveState
	timeout          time.Duration
	log              *zap.Logger
}

func NewConsumer(save saveState, log *zap.Logger) *Consumer {
	return &Consumer{
		saveStateHandler: save,
		timeout:          30 * time.Second,
		log:              log.Named("consumer"),
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
			var snap kafka.StateSnapshot
			if err := jsoniter.Unmarshal(message.Value, &snap); err != nil || len(snap.State) == 0 {
				consumer.log.Error("drop malformed snapshot", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}
			ctx, cancel := context.WithTimeout(session.Context(), consumer.timeout)
			err := consumer.saveStateHandler(ctx, snap.State, snap.Version)
			cancel()
			switch {
			case errors.Is(err, errs.ErrStaleState):
				consumer.log.Info("skip stale snapshot",
					zap.Int64("version", snap.Version), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			case err != nil:
				consumer.log.Error("consumer.saveStateHandler", zap.Error(err), zap.Int64("offset", message.Offset))
				continue
			}

			consumer.log.Debug("Message claimed:",
				zap.Int("size", len(message.Value)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
