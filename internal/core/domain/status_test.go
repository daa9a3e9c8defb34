package domain

import "testing"

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{
		StatusDraft, StatusPending, StatusAssigned, StatusPickedUp,
		StatusInTransit, StatusOutForDelivery, StatusDelivered,
		StatusFailed, StatusCancelled, StatusException,
	} {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []Status{"", "shipped", "DELIVERED", "in transit"} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []Status{StatusDelivered, StatusFailed, StatusCancelled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("expected %q to be terminal", s)
		}
		for _, next := range []Status{
			StatusDraft, StatusPending, StatusAssigned, StatusPickedUp,
			StatusInTransit, StatusOutForDelivery, StatusDelivered,
			StatusFailed, StatusCancelled, StatusException,
		} {
			if s.CanTransitionTo(next) {
				t.Errorf("terminal status %q allowed transition to %q", s, next)
			}
		}
	}
	if StatusException.IsTerminal() {
		t.Errorf("exception is recoverable, not terminal")
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusDraft, StatusCancelled, true},
		{StatusDraft, StatusAssigned, false},
		{StatusPending, StatusAssigned, true},
		{StatusPending, StatusDelivered, false},
		{StatusAssigned, StatusPickedUp, true},
		{StatusPickedUp, StatusInTransit, true},
		{StatusInTransit, StatusOutForDelivery, true},
		{StatusInTransit, StatusDelivered, false}, // must pass through out_for_delivery
		{StatusOutForDelivery, StatusDelivered, true},
		{StatusOutForDelivery, StatusPending, false},
		{StatusException, StatusInTransit, true}, // recovery path
		{StatusException, StatusCancelled, true},
		{StatusException, StatusDraft, false},
		{StatusDelivered, StatusInTransit, false},
		{"bogus", StatusPending, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%q -> %q = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatus_ColorAndLabel(t *testing.T) {
	if got := StatusDelivered.Color(); got != "green" {
		t.Errorf("Color(delivered) = %q, want green", got)
	}
	if got := StatusOutForDelivery.Label(); got != "Out for Delivery" {
		t.Errorf("Label(out_for_delivery) = %q", got)
	}
	// Unknown statuses degrade gracefully instead of panicking.
	if got := Status("weird").Color(); got != "gray" {
		t.Errorf("Color(weird) = %q, want gray", got)
	}
	if got := Status("weird").Label(); got != "weird" {
		t.Errorf("Label(weird) = %q, want raw value", got)
	}
}
