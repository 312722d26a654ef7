package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/inventory"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventStockAdjusted = "StockAdjusted"

// Consumer is the subset of broker.KafkaConsumer the listener reads from.
type Consumer interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type InventoryListener struct {
	consumer Consumer
	uc       inventory.UseCase
	logger   logger.ZapLogger
}

func NewInventoryListener(consumer Consumer, uc inventory.UseCase, logger logger.ZapLogger) *InventoryListener {
	return &InventoryListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *InventoryListener) Start(ctx context.Context) {
	l.logger.Info("Starting Inventory Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Inventory Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type StockAdjustedEvent struct {
	EventID   string                `json:"event_id"`
	EventType string                `json:"event_type"`
	Payload   model.StockAdjustment `json:"payload"`
	Timestamp time.Time             `json:"timestamp"`
}

func (l *InventoryListener) processMessage(ctx context.Context, value []byte) {
	var event StockAdjustedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventStockAdjusted {
		return
	}

	adj := event.Payload
	if adj.AdjustedAt.IsZero() {
		adj.AdjustedAt = event.Timestamp
	}

	applied, err := l.uc.Apply(ctx, adj)
	if err != nil {
		l.logger.Error("Failed to apply stock adjustment",
			zap.String("event_id", event.EventID),
			zap.String("kind", string(adj.Kind)),
			zap.String("id", adj.ID),
			zap.Error(err),
		)
		return
	}
	l.logger.Info("Processed StockAdjusted event",
		zap.String("event_id", event.EventID),
		zap.String("id", adj.ID),
		zap.Bool("applied", applied),
	)
}
