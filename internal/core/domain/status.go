package domain

// Status represents the lifecycle state of a shipment. The ten values below
// are the only ones ever written to the status field; they are the de facto
// schema contract with stored data.
type Status string

const (
	StatusDraft          Status = "draft"
	StatusPending        Status = "pending"
	StatusAssigned       Status = "assigned"
	StatusPickedUp       Status = "picked_up"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusFailed         Status = "failed"
	StatusCancelled      Status = "cancelled"
	StatusException      Status = "exception"
)

// validTransitions defines the allowed state machine transitions.
// delivered, failed and cancelled are terminal.
var validTransitions = map[Status][]Status{
	StatusDraft:          {StatusPending, StatusCancelled},
	StatusPending:        {StatusAssigned, StatusFailed, StatusCancelled, StatusException},
	StatusAssigned:       {StatusPickedUp, StatusFailed, StatusCancelled, StatusException},
	StatusPickedUp:       {StatusInTransit, StatusFailed, StatusCancelled, StatusException},
	StatusInTransit:      {StatusOutForDelivery, StatusFailed, StatusCancelled, StatusException},
	StatusOutForDelivery: {StatusDelivered, StatusFailed, StatusCancelled, StatusException},
	StatusException:      {StatusAssigned, StatusPickedUp, StatusInTransit, StatusOutForDelivery, StatusFailed, StatusCancelled},
}

var statusColors = map[Status]string{
	StatusDraft:          "gray",
	StatusPending:        "yellow",
	StatusAssigned:       "blue",
	StatusPickedUp:       "indigo",
	StatusInTransit:      "purple",
	StatusOutForDelivery: "orange",
	StatusDelivered:      "green",
	StatusFailed:         "red",
	StatusCancelled:      "gray",
	StatusException:      "red",
}

var statusLabels = map[Status]string{
	StatusDraft:          "Draft",
	StatusPending:        "Pending",
	StatusAssigned:       "Assigned",
	StatusPickedUp:       "Picked Up",
	StatusInTransit:      "In Transit",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
	StatusFailed:         "Failed",
	StatusCancelled:      "Cancelled",
	StatusException:      "Exception",
}

// IsValid reports whether s is one of the ten canonical statuses.
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed || s == StatusCancelled
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Color returns the display color token for s. Unknown statuses fall back
// to the neutral "gray".
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "gray"
}

// Label returns the human-readable label for s. Unknown statuses fall back
// to the raw status string.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}
