package domain

import "time"

// NotificationType identifies the lifecycle event a notification announces.
type NotificationType string

const (
	NotifyShipmentCreated NotificationType = "shipment_created"
	NotifyAssigned        NotificationType = "assigned"
	NotifyPickedUp        NotificationType = "picked_up"
	NotifyOutForDelivery  NotificationType = "out_for_delivery"
	NotifyDelivered       NotificationType = "delivered"
	NotifyException       NotificationType = "exception"
	NotifyETAUpdate       NotificationType = "eta_update"
)

// Notification is addressed to one user and created in response to a
// shipment lifecycle transition. The payload is free-form; when it carries a
// tracking_code it must reference an existing shipment.
type Notification struct {
	ID        string                 `json:"id" bson:"_id,omitempty"`
	UserID    string                 `json:"user_id" bson:"user_id"`
	Type      NotificationType       `json:"type" bson:"type"`
	Title     string                 `json:"title" bson:"title"`
	Message   string                 `json:"message" bson:"message"`
	Payload   map[string]interface{} `json:"payload,omitempty" bson:"payload,omitempty"`
	Read      bool                   `json:"read" bson:"read"`
	ReadAt    *time.Time             `json:"read_at,omitempty" bson:"read_at,omitempty"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
}
