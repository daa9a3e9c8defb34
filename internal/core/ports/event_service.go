package ports

import (
	"context"
	"time"
)

// LocationInput carries geographic coordinates for a tracking event.
type LocationInput struct {
	Lat float64
	Lng float64
}

// TelemetryInput carries optional motion data sampled by the courier app.
type TelemetryInput struct {
	SpeedKmh  float64
	Heading   float64
	AccuracyM float64
}

// TrackingEventInput is the DTO passed from the transport layer to EventService.
type TrackingEventInput struct {
	TrackingCode string
	EventType    string
	Description  string
	Timestamp    time.Time
	Location     *LocationInput
	Telemetry    *TelemetryInput
}

// EventService processes incoming tracking events (courier telemetry).
type EventService interface {
	Process(ctx context.Context, event TrackingEventInput) error
}
