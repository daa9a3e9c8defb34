package domain

import "time"

// Service tiers selectable at creation.
const (
	ServiceSameDay     = "same_day"
	ServiceNextDay     = "next_day"
	ServiceStandard    = "standard"
	ServiceExpress     = "express"
	ServiceFreight     = "freight"
	ServicePallet      = "pallet"
	ServiceCrossBorder = "cross_border"
)

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Address represents a physical location.
type Address struct {
	Line1      string `json:"line1" bson:"line1"`
	Line2      string `json:"line2,omitempty" bson:"line2,omitempty"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	PostalCode string `json:"postal_code" bson:"postal_code"`
	Country    string `json:"country" bson:"country"`
}

// Dimensions represents the physical size of a package in centimetres.
type Dimensions struct {
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Unit   string  `json:"unit" bson:"unit"`
}

// Shipment is the core aggregate root. Field names are the schema contract
// with existing stored data and must be preserved.
type Shipment struct {
	ID                string      `json:"id" bson:"_id,omitempty"`
	TrackingCode      string      `json:"tracking_code" bson:"tracking_code"`
	CustomerID        string      `json:"customer_id" bson:"customer_id"`
	AssignedCourierID string      `json:"assigned_courier_id,omitempty" bson:"assigned_courier_id,omitempty"`
	SenderName        string      `json:"sender_name" bson:"sender_name"`
	SenderPhone       string      `json:"sender_phone" bson:"sender_phone"`
	SenderAddress     Address     `json:"sender_address" bson:"sender_address"`
	RecipientName     string      `json:"recipient_name" bson:"recipient_name"`
	RecipientPhone    string      `json:"recipient_phone" bson:"recipient_phone"`
	RecipientEmail    string      `json:"recipient_email,omitempty" bson:"recipient_email,omitempty"`
	RecipientAddress  Address     `json:"recipient_address" bson:"recipient_address"`
	WeightKg          float64     `json:"weight_kg" bson:"weight_kg"`
	Dimensions        Dimensions  `json:"dimensions" bson:"dimensions"`
	ServiceType       string      `json:"service_type" bson:"service_type"`
	SpecialNotes      string      `json:"special_instructions,omitempty" bson:"special_instructions,omitempty"`
	Status            Status      `json:"status" bson:"status"`
	PriceQuoted       float64     `json:"price_quoted" bson:"price_quoted"`
	CreatedAt         time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at" bson:"updated_at"`
	EstimatedDelivery time.Time   `json:"estimated_delivery" bson:"estimated_delivery"`
	ActualPickup      *time.Time  `json:"actual_pickup,omitempty" bson:"actual_pickup,omitempty"`
	ActualDelivery    *time.Time  `json:"actual_delivery,omitempty" bson:"actual_delivery,omitempty"`
	Origin            Coordinates `json:"origin" bson:"origin"`
	Destination       Coordinates `json:"destination" bson:"destination"`
}
