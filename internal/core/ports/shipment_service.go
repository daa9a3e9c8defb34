package ports

import (
	"context"
	"time"

	"github.com/shipease/logistics-api/internal/core/domain"
)

// CoordinatesInput holds geographic coordinates.
type CoordinatesInput struct {
	Lat float64
	Lng float64
}

// AddressInput holds a physical location.
type AddressInput struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// DimensionsInput holds package size in centimetres.
type DimensionsInput struct {
	Length float64
	Width  float64
	Height float64
}

// CreateShipmentInput carries all data needed to create a new shipment.
// Origin/Destination coordinates and DistanceKm are optional: when no
// distance can be derived, a fixed assumed distance is used for quoting.
type CreateShipmentInput struct {
	CustomerID       string
	SenderName       string
	SenderPhone      string
	SenderAddress    AddressInput
	RecipientName    string
	RecipientPhone   string
	RecipientEmail   string
	RecipientAddress AddressInput
	WeightKg         float64
	Dimensions       DimensionsInput
	ServiceType      string
	SpecialNotes     string
	Origin           *CoordinatesInput
	Destination      *CoordinatesInput
	DistanceKm       *float64
}

// ShipmentResult is returned by the service after creating a shipment.
type ShipmentResult struct {
	TrackingCode      string
	Status            string
	PriceQuoted       float64
	CreatedAt         time.Time
	EstimatedDelivery time.Time
}

// TrackingView is the public tracking page projection: the shipment, its
// event history (newest first) and the latest known position if any.
type TrackingView struct {
	Shipment       *domain.Shipment
	StatusLabel    string
	StatusColor    string
	Events         []*domain.TrackingEvent
	LatestPosition *domain.TrackingEvent
	ETARemaining   string
}

// AssignCourierInput carries a dispatcher's courier assignment.
type AssignCourierInput struct {
	ShipmentID string
	CourierID  string
	// ActorRole must be dispatcher or admin.
	ActorRole string
}

// UpdateStatusInput carries a courier's status change.
type UpdateStatusInput struct {
	ShipmentID string
	Status     string
	Note       string
	// ActorID is the courier performing the change; must match the
	// assigned courier unless ActorRole is dispatcher or admin.
	ActorID   string
	ActorRole string
}

// ListShipmentsInput carries all parameters for the list endpoint.
type ListShipmentsInput struct {
	Role        string
	UserID      string
	Status      string
	ServiceType string
	Search      string
	DateFrom    time.Time
	DateTo      time.Time
	Page        int
	Limit       int
}

// ListShipmentsResult is returned by ListShipments.
type ListShipmentsResult struct {
	Items      []*domain.Shipment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ShipmentService defines use-case operations for shipments.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*ShipmentResult, error)
	// Track is the public tracking lookup; no authentication required.
	Track(ctx context.Context, trackingCode string) (*TrackingView, error)
	ListShipments(ctx context.Context, input ListShipmentsInput) (*ListShipmentsResult, error)
	AssignCourier(ctx context.Context, input AssignCourierInput) error
	UpdateStatus(ctx context.Context, input UpdateStatusInput) error
}
