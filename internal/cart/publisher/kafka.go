package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/cart"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Producer is the subset of broker.KafkaProducer the publisher needs.
type Producer interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Envelope is the message written to the cart topic.
type Envelope struct {
	EventID    string     `json:"event_id"`
	SessionID  string     `json:"session_id"`
	OccurredAt time.Time  `json:"occurred_at"`
	Event      cart.Event `json:"event"`
}

type KafkaPublisher struct {
	producer Producer
	now      func() time.Time
}

func NewKafkaPublisher(p Producer) *KafkaPublisher {
	return &KafkaPublisher{producer: p, now: time.Now}
}

// Publish keys by session id so one shopper's events stay ordered within a partition.
func (p *KafkaPublisher) Publish(ctx context.Context, sessionID string, ev cart.Event) error {
	payload, err := json.Marshal(Envelope{
		EventID:    uuid.NewString(),
		SessionID:  sessionID,
		OccurredAt: p.now().UTC(),
		Event:      ev,
	})
	if err != nil {
		return errors.Wrap(err, "marshal cart event")
	}
	return errors.Wrap(p.producer.Publish(ctx, sessionID, payload), "publish cart event")
}

var _ cart.Publisher = (*KafkaPublisher)(nil)
