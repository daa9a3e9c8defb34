package ports

import (
	"context"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// RealtimePublisher pushes newly written rows to interested listeners.
// "Record written" and "listener notified" are deliberately separate
// contracts: a publish failure never invalidates the preceding write.
type RealtimePublisher interface {
	// PublishNotification pushes n onto the recipient's feed.
	PublishNotification(ctx context.Context, n *domain.Notification) error
	// PublishTrackingEvent pushes e onto the shipment's feed.
	PublishTrackingEvent(ctx context.Context, e *domain.TrackingEvent) error
}
