package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// Publisher implements ports.RealtimePublisher over Redis pub/sub. Rows are
// published as JSON on per-recipient channels so subscribers can filter by
// user id or shipment id without fanning in everything.
//
//	notifications:<user_id>
//	shipments:<shipment_id>
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a Publisher wrapping the given Redis client.
func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// PublishNotification pushes n onto the recipient's notification channel.
func (p *Publisher) PublishNotification(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	channel := fmt.Sprintf("notifications:%s", n.UserID)
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// PublishTrackingEvent pushes e onto the shipment's event channel.
func (p *Publisher) PublishTrackingEvent(ctx context.Context, e *domain.TrackingEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("publish tracking event: %w", err)
	}
	channel := fmt.Sprintf("shipments:%s", e.ShipmentID)
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish tracking event: %w", err)
	}
	return nil
}

// SubscribeNotifications returns a pub/sub subscription for one user's feed.
// The caller owns the subscription and must Close it.
func (p *Publisher) SubscribeNotifications(ctx context.Context, userID string) *redis.PubSub {
	return p.client.Subscribe(ctx, fmt.Sprintf("notifications:%s", userID))
}

// SubscribeShipment returns a pub/sub subscription for one shipment's events.
func (p *Publisher) SubscribeShipment(ctx context.Context, shipmentID string) *redis.PubSub {
	return p.client.Subscribe(ctx, fmt.Sprintf("shipments:%s", shipmentID))
}
