package event

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisSubscriber is the subset of the go-redis client used for streaming.
type redisSubscriber interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// RedisEventSubscriber streams envelopes published to an owner's channel.
// Each Stream call holds its own Redis subscription until the cancel
// function runs or the context is done.
type RedisEventSubscriber struct {
	client redisSubscriber
	logger *zap.Logger
	prefix string
}

// NewRedisEventSubscriber creates a subscriber over the given Redis client
func NewRedisEventSubscriber(client redisSubscriber, logger *zap.Logger) *RedisEventSubscriber {
	return &RedisEventSubscriber{
		client: client,
		logger: logger,
		prefix: DefaultChannelPrefix,
	}
}

// Stream subscribes to the owner's event channel and decodes messages as
// they arrive. The returned cancel function must be called to release
// the subscription. Messages that fail to decode are logged and skipped.
func (s *RedisEventSubscriber) Stream(ctx context.Context, ownerID uuid.UUID) (<-chan Envelope, func(), error) {
	channel := s.prefix + ":" + ownerID.String()
	pubsub := s.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, err
	}

	out := make(chan Envelope)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var env Envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				s.logger.Warn("failed to decode event envelope",
					zap.String("channel", msg.Channel),
					zap.Error(err))
				continue
			}
			select {
			case out <- env:
			case <-ctx.Done():
				return
			}
		}
	}()

	cancel := func() { _ = pubsub.Close() }
	return out, cancel, nil
}
