package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

const (
	channelPrefix = "menu_events:"
)

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // Map of tenant ID to subscriber
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

// ChannelName is the Redis channel carrying one tenant's menu events.
func ChannelName(tenantID string) string {
	return channelPrefix + tenantID
}

// Publish publishes a menu event to the tenant's Redis channel
func (ps *RedisPubSub) Publish(ctx context.Context, event domain.MenuEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal menu event: %w", err)
	}

	channel := ChannelName(event.TenantID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe subscribes to menu events for a specific tenant
func (ps *RedisPubSub) Subscribe(ctx context.Context, tenantID string, callback func(domain.MenuEvent)) error {
	channel := ChannelName(tenantID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[tenantID]; exists {
		ps.subscriberMu.Unlock()
		ps.logger.Infof("Already subscribed to tenant channel: %s", channel)
		return nil
	}
	sub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[tenantID] = sub
	ps.subscriberMu.Unlock()

	go func() {
		defer func() {
			ps.logger.Infof("Closing subscription for tenant channel: %s", channel)
			ps.subscriberMu.Lock()
			if ps.subscribers[tenantID] == sub {
				delete(ps.subscribers, tenantID)
			}
			ps.subscriberMu.Unlock()
			sub.Close()
		}()

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event domain.MenuEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					ps.logger.Errorf("Failed to unmarshal menu event from channel %s: %v", channel, err)
					continue
				}
				callback(event)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to tenant channel: %s", channel)
	return nil
}

// Unsubscribe removes subscription for a tenant
func (ps *RedisPubSub) Unsubscribe(tenantID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if sub, exists := ps.subscribers[tenantID]; exists {
		sub.Close()
		delete(ps.subscribers, tenantID)
		ps.logger.Infof("Unsubscribed from tenant channel: %s", ChannelName(tenantID))
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for tenantID, sub := range ps.subscribers {
		sub.Close()
		delete(ps.subscribers, tenantID)
		ps.logger.Infof("Closed subscription for tenant channel: %s", ChannelName(tenantID))
	}
}
