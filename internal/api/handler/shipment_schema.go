package handler

import "time"

// --- Request types ---

type addressRequest struct {
	Line1      string `json:"line1"       validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city"        validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country"     validate:"required"`
}

type coordinatesRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type dimensionsRequest struct {
	Length float64 `json:"length" validate:"gt=0"`
	Width  float64 `json:"width"  validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

type createShipmentRequest struct {
	SenderName       string              `json:"sender_name"      validate:"required"`
	SenderPhone      string              `json:"sender_phone"     validate:"required"`
	SenderAddress    addressRequest      `json:"sender_address"   validate:"required"`
	RecipientName    string              `json:"recipient_name"   validate:"required"`
	RecipientPhone   string              `json:"recipient_phone"  validate:"required"`
	RecipientEmail   string              `json:"recipient_email"  validate:"omitempty,email"`
	RecipientAddress addressRequest      `json:"recipient_address" validate:"required"`
	WeightKg         float64             `json:"weight_kg"        validate:"required,gt=0"`
	Dimensions       dimensionsRequest   `json:"dimensions"       validate:"required"`
	ServiceType      string              `json:"service_type"     validate:"required,oneof=same_day next_day standard express freight pallet cross_border"`
	SpecialNotes     string              `json:"special_instructions"`
	Origin           *coordinatesRequest `json:"origin"`
	Destination      *coordinatesRequest `json:"destination"`
	DistanceKm       *float64            `json:"distance_km"      validate:"omitempty,gte=0"`
}

type assignCourierRequest struct {
	CourierID string `json:"courier_id" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// --- Response types ---

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type shipmentLinks struct {
	Self  string `json:"self"`
	Track string `json:"track"`
}

type createShipmentResponse struct {
	TrackingCode      string        `json:"tracking_code"`
	Status            string        `json:"status"`
	PriceQuoted       float64       `json:"price_quoted"`
	CreatedAt         time.Time     `json:"created_at"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
	Links             shipmentLinks `json:"_links"`
}

type addressResponse struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type telemetryResponse struct {
	SpeedKmh  float64 `json:"speed_kmh,omitempty"`
	Heading   float64 `json:"heading,omitempty"`
	AccuracyM float64 `json:"accuracy_m,omitempty"`
}

type trackingEventResponse struct {
	EventType   string               `json:"event_type"`
	Description string               `json:"description,omitempty"`
	Location    *coordinatesResponse `json:"location,omitempty"`
	Telemetry   *telemetryResponse   `json:"telemetry,omitempty"`
	RecordedAt  time.Time            `json:"recorded_at"`
}

type trackingResponse struct {
	TrackingCode      string                  `json:"tracking_code"`
	Status            string                  `json:"status"`
	StatusLabel       string                  `json:"status_label"`
	StatusColor       string                  `json:"status_color"`
	ServiceType       string                  `json:"service_type"`
	RecipientName     string                  `json:"recipient_name"`
	RecipientAddress  addressResponse         `json:"recipient_address"`
	CreatedAt         time.Time               `json:"created_at"`
	EstimatedDelivery time.Time               `json:"estimated_delivery"`
	ETARemaining      string                  `json:"eta_remaining,omitempty"`
	ActualPickup      *time.Time              `json:"actual_pickup,omitempty"`
	ActualDelivery    *time.Time              `json:"actual_delivery,omitempty"`
	Events            []trackingEventResponse `json:"events"`
	LatestPosition    *trackingEventResponse  `json:"latest_position,omitempty"`
}

// shipmentSummaryResponse is the lightweight item used in list responses.
type shipmentSummaryResponse struct {
	ID                string        `json:"id"`
	TrackingCode      string        `json:"tracking_code"`
	Status            string        `json:"status"`
	StatusLabel       string        `json:"status_label"`
	StatusColor       string        `json:"status_color"`
	ServiceType       string        `json:"service_type"`
	RecipientName     string        `json:"recipient_name"`
	RecipientCity     string        `json:"recipient_city"`
	PriceQuoted       float64       `json:"price_quoted"`
	CreatedAt         time.Time     `json:"created_at"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
	Links             shipmentLinks `json:"_links"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listShipmentsResponse struct {
	Data       []shipmentSummaryResponse `json:"data"`
	Pagination paginationResponse        `json:"pagination"`
}
