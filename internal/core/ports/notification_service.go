package ports

import (
	"context"
	"time"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// Notifier translates shipment lifecycle events into persisted notification
// records. All dispatch methods are best-effort from the caller's
// perspective: a failed dispatch must not roll back the state change that
// triggered it.
type Notifier interface {
	// Dispatch is the single write primitive: constructs an unread
	// notification and persists it.
	Dispatch(ctx context.Context, userID string, typ domain.NotificationType, title, message string, payload map[string]interface{}) error
	// DispatchToMany fans out one notification per user in a single
	// logical batch; on failure none are considered delivered.
	DispatchToMany(ctx context.Context, userIDs []string, typ domain.NotificationType, title, message string, payload map[string]interface{}) error

	// Named lifecycle helpers, each composing a canonical template.
	ShipmentCreated(ctx context.Context, customerID, trackingCode, recipientName string) error
	CourierAssigned(ctx context.Context, courierID, trackingCode, destination string) error
	CustomerAssigned(ctx context.Context, customerID, trackingCode, courierName string) error
	PickedUp(ctx context.Context, customerID, trackingCode string) error
	OutForDelivery(ctx context.Context, customerID, trackingCode string) error
	Delivered(ctx context.Context, customerID, trackingCode string) error
	ExceptionRaised(ctx context.Context, customerID, trackingCode, reason string) error
	ETAUpdated(ctx context.Context, customerID, trackingCode string, newETA time.Time) error
}

// NotificationService exposes the recipient-side operations on top of Notifier.
type NotificationService interface {
	Notifier

	List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id, userID string) error
	Delete(ctx context.Context, id, userID string) error
}
