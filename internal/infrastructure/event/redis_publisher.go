package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bizflow/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultChannelPrefix is the Redis channel namespace for domain events.
// Events fan out to "<prefix>:<owner_id>" so external consumers can
// subscribe per owner account.
const DefaultChannelPrefix = "bizflow:events"

// redisPublisher is the subset of the go-redis client used for fan-out.
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Envelope is the wire format for events published to Redis.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	OwnerID       string          `json:"owner_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// RedisEventPublisher forwards domain events to Redis pub/sub channels.
// It subscribes to the in-memory bus as a wildcard handler, so every
// event published after a commit is also visible to external consumers.
type RedisEventPublisher struct {
	client     redisPublisher
	serializer *EventSerializer
	logger     *zap.Logger
	prefix     string
}

// NewRedisEventPublisher creates a publisher over the given Redis client
func NewRedisEventPublisher(client redisPublisher, logger *zap.Logger) *RedisEventPublisher {
	return &RedisEventPublisher{
		client:     client,
		serializer: NewEventSerializer(),
		logger:     logger,
		prefix:     DefaultChannelPrefix,
	}
}

// Handle serializes the event and publishes it to the owner's channel
func (p *RedisEventPublisher) Handle(ctx context.Context, event shared.DomainEvent) error {
	payload, err := p.serializer.Serialize(event)
	if err != nil {
		return fmt.Errorf("serialize event %s: %w", event.EventType(), err)
	}

	envelope := Envelope{
		EventID:       event.EventID().String(),
		EventType:     event.EventType(),
		AggregateType: event.AggregateType(),
		AggregateID:   event.AggregateID().String(),
		OwnerID:       event.OwnerID().String(),
		OccurredAt:    event.OccurredAt(),
		Payload:       payload,
	}

	message, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope for %s: %w", event.EventType(), err)
	}

	channel := p.ChannelFor(event.OwnerID().String())
	if err := p.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.EventType(), channel, err)
	}

	p.logger.Debug("event published to redis",
		zap.String("channel", channel),
		zap.String("event_type", event.EventType()),
		zap.String("event_id", envelope.EventID),
	)
	return nil
}

// EventTypes returns an empty slice: the publisher receives all events
func (p *RedisEventPublisher) EventTypes() []string {
	return nil
}

// ChannelFor returns the Redis channel name for an owner account
func (p *RedisEventPublisher) ChannelFor(ownerID string) string {
	return p.prefix + ":" + ownerID
}

var _ shared.EventHandler = (*RedisEventPublisher)(nil)
