package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shipease/logistics-api/internal/core/domain"
)

func TestDispatch_PersistsUnreadAndPublishes(t *testing.T) {
	repo := &stubNotificationRepo{}
	pub := &stubPublisher{}
	svc := NewNotificationService(repo, pub, zerolog.Nop())

	err := svc.Dispatch(context.Background(), "user_1", domain.NotifyDelivered,
		"Delivered Successfully", "Your package has been delivered!", map[string]interface{}{"tracking_code": "SE-ABCD-EFGH-JKLM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 persisted notification, got %d", len(repo.inserted))
	}
	n := repo.inserted[0]
	if n.ID == "" {
		t.Fatalf("expected generated id")
	}
	if n.Read {
		t.Fatalf("new notification must be unread")
	}
	if n.UserID != "user_1" || n.Type != domain.NotifyDelivered {
		t.Fatalf("wrong recipient or type: %+v", n)
	}
	if len(pub.notifications) != 1 {
		t.Fatalf("expected realtime publish, got %d", len(pub.notifications))
	}
}

func TestDispatch_PublishFailureIsNotFatal(t *testing.T) {
	repo := &stubNotificationRepo{}
	pub := &stubPublisher{notifErr: errors.New("redis gone")}
	svc := NewNotificationService(repo, pub, zerolog.Nop())

	err := svc.Dispatch(context.Background(), "user_1", domain.NotifyPickedUp, "t", "m", nil)
	if err != nil {
		t.Fatalf("publish failure must not fail the dispatch: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("record must still be persisted")
	}
}

func TestDispatch_PersistenceFailureSurfaces(t *testing.T) {
	repo := &stubNotificationRepo{insertErr: fmt.Errorf("insert notification: %w", domain.ErrPersistence)}
	pub := &stubPublisher{}
	svc := NewNotificationService(repo, pub, zerolog.Nop())

	err := svc.Dispatch(context.Background(), "user_1", domain.NotifyPickedUp, "t", "m", nil)
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if len(pub.notifications) != 0 {
		t.Fatalf("nothing should be published when the write fails")
	}
}

func TestDispatch_RequiresRecipient(t *testing.T) {
	svc := NewNotificationService(&stubNotificationRepo{}, &stubPublisher{}, zerolog.Nop())
	err := svc.Dispatch(context.Background(), "", domain.NotifyPickedUp, "t", "m", nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDispatchToMany_SingleBatch(t *testing.T) {
	repo := &stubNotificationRepo{}
	pub := &stubPublisher{}
	svc := NewNotificationService(repo, pub, zerolog.Nop())

	users := []string{"user_1", "user_2", "user_3"}
	err := svc.DispatchToMany(context.Background(), users, domain.NotifyException,
		"Delivery Issue", "Severe weather in the area", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.inserted) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(repo.inserted))
	}
	if len(pub.notifications) != 3 {
		t.Fatalf("expected 3 publishes, got %d", len(pub.notifications))
	}
	for i, n := range repo.inserted {
		if n.UserID != users[i] {
			t.Fatalf("notification %d addressed to %q, want %q", i, n.UserID, users[i])
		}
	}
}

func TestDispatchToMany_BatchFailureDeliversNone(t *testing.T) {
	repo := &stubNotificationRepo{insertManyErr: fmt.Errorf("bulk write: %w", domain.ErrPersistence)}
	pub := &stubPublisher{}
	svc := NewNotificationService(repo, pub, zerolog.Nop())

	err := svc.DispatchToMany(context.Background(), []string{"a", "b"}, domain.NotifyException, "t", "m", nil)
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if len(repo.inserted) != 0 || len(pub.notifications) != 0 {
		t.Fatalf("failed batch must deliver nothing")
	}
}

func TestDispatchToMany_RequiresRecipients(t *testing.T) {
	svc := NewNotificationService(&stubNotificationRepo{}, &stubPublisher{}, zerolog.Nop())
	err := svc.DispatchToMany(context.Background(), nil, domain.NotifyException, "t", "m", nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestLifecycleHelpers_Templates(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, &stubPublisher{}, zerolog.Nop())
	ctx := context.Background()
	code := "SE-ABCD-EFGH-JKLM"

	if err := svc.ShipmentCreated(ctx, "cust_1", code, "Maria Lopez"); err != nil {
		t.Fatalf("ShipmentCreated: %v", err)
	}
	if err := svc.CourierAssigned(ctx, "cour_1", code, "Monterrey"); err != nil {
		t.Fatalf("CourierAssigned: %v", err)
	}
	if err := svc.CustomerAssigned(ctx, "cust_1", code, ""); err != nil {
		t.Fatalf("CustomerAssigned: %v", err)
	}
	if err := svc.ExceptionRaised(ctx, "cust_1", code, "address not found"); err != nil {
		t.Fatalf("ExceptionRaised: %v", err)
	}

	if len(repo.inserted) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(repo.inserted))
	}

	if got := repo.inserted[0].Message; got != "Your shipment to Maria Lopez has been created successfully." {
		t.Errorf("created message = %q", got)
	}
	if got := repo.inserted[1].Message; got != "You have a new delivery to Monterrey" {
		t.Errorf("courier message = %q", got)
	}
	// Empty courier name falls back to a generic subject.
	if got := repo.inserted[2].Message; got != "A courier has been assigned to your shipment." {
		t.Errorf("customer message = %q", got)
	}
	if got := repo.inserted[3].Message; got != "There's an issue with your shipment: address not found" {
		t.Errorf("exception message = %q", got)
	}

	for i, n := range repo.inserted {
		if n.Payload["tracking_code"] != code {
			t.Errorf("notification %d missing tracking_code payload: %+v", i, n.Payload)
		}
	}
	if repo.inserted[1].Type != domain.NotifyAssigned || repo.inserted[2].Type != domain.NotifyAssigned {
		t.Errorf("assignment notifications must share the assigned type")
	}
}

func TestETAUpdated_PayloadCarriesNewETA(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, &stubPublisher{}, zerolog.Nop())

	eta := time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC)
	if err := svc.ETAUpdated(context.Background(), "cust_1", "SE-ABCD-EFGH-JKLM", eta); err != nil {
		t.Fatalf("ETAUpdated: %v", err)
	}
	n := repo.inserted[0]
	if n.Type != domain.NotifyETAUpdate {
		t.Fatalf("type = %q", n.Type)
	}
	if n.Payload["new_eta"] != eta.Format(time.RFC3339) {
		t.Fatalf("new_eta payload = %v", n.Payload["new_eta"])
	}
}

func TestList_DefaultsLimit(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, &stubPublisher{}, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		if err := svc.Dispatch(ctx, "user_1", domain.NotifyPickedUp, "t", "m", nil); err != nil {
			t.Fatalf("dispatch %d: %v", i, err)
		}
	}

	got, err := svc.List(ctx, "user_1", false, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 50 {
		t.Fatalf("expected default limit of 50, got %d", len(got))
	}
}
