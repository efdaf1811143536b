package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Publisher is the part of a redis client used for pub/sub
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisNotifier publishes events as JSON on a redis channel
type RedisNotifier struct {
	client  Publisher
	channel string
}

// NewRedisNotifier creates a new RedisNotifier
func NewRedisNotifier(client Publisher, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
	}
}

// Send event to the listeners
func (p *RedisNotifier) Send(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publishing to redis channel %s: %w", p.channel, err)
	}

	return nil
}
