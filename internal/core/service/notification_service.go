package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shipease/logistics-api/internal/core/domain"
	"github.com/shipease/logistics-api/internal/core/ports"
)

type notificationService struct {
	repo      ports.NotificationRepository
	publisher ports.RealtimePublisher
	log       zerolog.Logger
}

// NewNotificationService returns a NotificationService that persists
// notifications through repo and pushes them to the realtime feed through
// publisher. The two are independent contracts: a publish failure is logged
// and never fails the dispatch.
func NewNotificationService(
	repo ports.NotificationRepository,
	publisher ports.RealtimePublisher,
	log zerolog.Logger,
) ports.NotificationService {
	return &notificationService{repo: repo, publisher: publisher, log: log}
}

// Dispatch constructs an unread notification and persists it. Storage
// failures surface to the caller wrapped in domain.ErrPersistence; the
// dispatcher itself does not retry.
func (s *notificationService) Dispatch(
	ctx context.Context,
	userID string,
	typ domain.NotificationType,
	title, message string,
	payload map[string]interface{},
) error {
	if userID == "" {
		return fmt.Errorf("%w: notification requires a recipient", domain.ErrValidation)
	}

	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Payload:   payload,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Str("type", string(typ)).Msg("notification write failed")
		return fmt.Errorf("dispatch notification: %w", err)
	}

	s.publish(ctx, n)

	s.log.Info().Str("user_id", userID).Str("type", string(typ)).Msg("notification dispatched")
	return nil
}

// DispatchToMany writes one notification per user id in a single batch. When
// the batch write fails, no notification from this call is considered
// delivered.
func (s *notificationService) DispatchToMany(
	ctx context.Context,
	userIDs []string,
	typ domain.NotificationType,
	title, message string,
	payload map[string]interface{},
) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("%w: notification fan-out requires at least one recipient", domain.ErrValidation)
	}

	now := time.Now().UTC()
	batch := make([]*domain.Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		batch = append(batch, &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    userID,
			Type:      typ,
			Title:     title,
			Message:   message,
			Payload:   payload,
			Read:      false,
			CreatedAt: now,
		})
	}

	if err := s.repo.InsertMany(ctx, batch); err != nil {
		s.log.Error().Err(err).Int("count", len(batch)).Str("type", string(typ)).Msg("notification batch write failed")
		return fmt.Errorf("dispatch notifications: %w", err)
	}

	for _, n := range batch {
		s.publish(ctx, n)
	}
	return nil
}

func (s *notificationService) publish(ctx context.Context, n *domain.Notification) {
	if err := s.publisher.PublishNotification(ctx, n); err != nil {
		s.log.Warn().Err(err).Str("user_id", n.UserID).Msg("realtime publish failed, record persisted")
	}
}

func trackingPayload(trackingCode string) map[string]interface{} {
	return map[string]interface{}{"tracking_code": trackingCode}
}

// --- Lifecycle helpers -----------------------------------------------------

func (s *notificationService) ShipmentCreated(ctx context.Context, customerID, trackingCode, recipientName string) error {
	return s.Dispatch(ctx, customerID, domain.NotifyShipmentCreated,
		"Shipment Created",
		fmt.Sprintf("Your shipment to %s has been created successfully.", recipientName),
		trackingPayload(trackingCode))
}

func (s *notificationService) CourierAssigned(ctx context.Context, courierID, trackingCode, destination string) error {
	return s.Dispatch(ctx, courierID, domain.NotifyAssigned,
		"New Delivery Assigned",
		fmt.Sprintf("You have a new delivery to %s", destination),
		trackingPayload(trackingCode))
}

func (s *notificationService) CustomerAssigned(ctx context.Context, customerID, trackingCode, courierName string) error {
	if courierName == "" {
		courierName = "A courier"
	}
	return s.Dispatch(ctx, customerID, domain.NotifyAssigned,
		"Courier Assigned",
		fmt.Sprintf("%s has been assigned to your shipment.", courierName),
		trackingPayload(trackingCode))
}

func (s *notificationService) PickedUp(ctx context.Context, customerID, trackingCode string) error {
	return s.Dispatch(ctx, customerID, domain.NotifyPickedUp,
		"Package Picked Up",
		"Your package has been picked up and is on its way!",
		trackingPayload(trackingCode))
}

func (s *notificationService) OutForDelivery(ctx context.Context, customerID, trackingCode string) error {
	return s.Dispatch(ctx, customerID, domain.NotifyOutForDelivery,
		"Out for Delivery",
		"Your package is out for delivery and will arrive soon!",
		trackingPayload(trackingCode))
}

func (s *notificationService) Delivered(ctx context.Context, customerID, trackingCode string) error {
	return s.Dispatch(ctx, customerID, domain.NotifyDelivered,
		"Delivered Successfully",
		"Your package has been delivered! Thank you for using ShipEase.",
		trackingPayload(trackingCode))
}

func (s *notificationService) ExceptionRaised(ctx context.Context, customerID, trackingCode, reason string) error {
	return s.Dispatch(ctx, customerID, domain.NotifyException,
		"Delivery Issue",
		fmt.Sprintf("There's an issue with your shipment: %s", reason),
		trackingPayload(trackingCode))
}

func (s *notificationService) ETAUpdated(ctx context.Context, customerID, trackingCode string, newETA time.Time) error {
	payload := trackingPayload(trackingCode)
	payload["new_eta"] = newETA.UTC().Format(time.RFC3339)
	return s.Dispatch(ctx, customerID, domain.NotifyETAUpdate,
		"Delivery Time Updated",
		fmt.Sprintf("Your delivery time has been updated to %s", newETA.UTC().Format("Jan 2, 2006 15:04 MST")),
		payload)
}

// --- Recipient-side operations ---------------------------------------------

func (s *notificationService) List(ctx context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByUser(ctx, userID, unreadOnly, limit)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID, time.Now().UTC())
}

func (s *notificationService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
