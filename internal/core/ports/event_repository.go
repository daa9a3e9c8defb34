package ports

import (
	"context"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// EventRepository handles the append-only tracking event log.
type EventRepository interface {
	// Insert appends an event; events are never updated or deleted.
	Insert(ctx context.Context, event *domain.TrackingEvent) error

	// ListByShipment returns events for a shipment, newest first.
	ListByShipment(ctx context.Context, shipmentID string, limit int) ([]*domain.TrackingEvent, error)

	// LatestPosition returns the most recent event carrying coordinates, or
	// domain.ErrShipmentNotFound when the shipment has none.
	LatestPosition(ctx context.Context, shipmentID string) (*domain.TrackingEvent, error)
}
