package domain

import "time"

// Tracking event types beyond plain status changes.
const (
	EventCreated        = "created"
	EventLocationUpdate = "location_update"
)

// Telemetry carries optional motion data sampled alongside a location update.
type Telemetry struct {
	SpeedKmh  float64 `json:"speed_kmh,omitempty" bson:"speed_kmh,omitempty"`
	Heading   float64 `json:"heading,omitempty" bson:"heading,omitempty"`
	AccuracyM float64 `json:"accuracy_m,omitempty" bson:"accuracy_m,omitempty"`
}

// TrackingEvent is an immutable, append-only log entry attached to one
// shipment. The most recent event with coordinates determines the displayed
// position; the shipment's own status field remains authoritative.
type TrackingEvent struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	ShipmentID  string       `json:"shipment_id" bson:"shipment_id"`
	EventType   string       `json:"event_type" bson:"event_type"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	Location    *Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	Telemetry   *Telemetry   `json:"telemetry,omitempty" bson:"telemetry,omitempty"`
	RecordedAt  time.Time    `json:"recorded_at" bson:"recorded_at"`
}
