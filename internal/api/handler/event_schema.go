package handler

import "time"

type locationRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type telemetryRequest struct {
	SpeedKmh  float64 `json:"speed_kmh"  validate:"gte=0"`
	Heading   float64 `json:"heading"    validate:"gte=0,lt=360"`
	AccuracyM float64 `json:"accuracy_m" validate:"gte=0"`
}

type trackingEventRequest struct {
	TrackingCode string            `json:"tracking_code" validate:"required"`
	EventType    string            `json:"event_type"    validate:"required,oneof=location_update created assigned picked_up in_transit out_for_delivery delivered exception"`
	Description  string            `json:"description"`
	Timestamp    time.Time         `json:"timestamp"     validate:"required"`
	Location     *locationRequest  `json:"location"`
	Telemetry    *telemetryRequest `json:"telemetry"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
