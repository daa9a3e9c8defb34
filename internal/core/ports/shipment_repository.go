package ports

import (
	"context"
	"time"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// ListShipmentsFilter carries all query parameters for listing shipments.
// Scoping fields are always enforced by the service layer (RBAC).
type ListShipmentsFilter struct {
	CustomerID  string    // non-empty = scoped to the owning customer
	CourierID   string    // non-empty = scoped to the assigned courier
	Status      string    // optional: filter by shipment status
	ServiceType string    // optional: filter by service type
	Search      string    // optional: partial match on tracking_code or recipient_name
	DateFrom    time.Time // optional: created_at >= DateFrom
	DateTo      time.Time // optional: created_at <= DateTo
	Page        int       // 1-based
	Limit       int       // max rows per page (capped at 100 by service)
}

// ShipmentRepository defines persistence operations for shipments.
type ShipmentRepository interface {
	// Create inserts a new shipment. A tracking code collision surfaces as
	// domain.ErrDuplicateTrackingCode.
	Create(ctx context.Context, s *domain.Shipment) error
	FindByTrackingCode(ctx context.Context, trackingCode string) (*domain.Shipment, error)
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	// List returns a page of shipments matching filter and the total count.
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.Shipment, int64, error)
	// AssignCourier sets the assigned courier and moves the shipment to assigned.
	AssignCourier(ctx context.Context, id, courierID string, ts time.Time) error
	// UpdateStatus sets the new status. The repository also stamps
	// actual_pickup on picked_up and actual_delivery on delivered.
	UpdateStatus(ctx context.Context, id string, status domain.Status, ts time.Time) error
	// UpdateETA overwrites the estimated delivery time.
	UpdateETA(ctx context.Context, id string, eta time.Time) error
}
