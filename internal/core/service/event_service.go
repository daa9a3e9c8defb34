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

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, trackingCode, eventType string, ts time.Time) (bool, error)
	Mark(ctx context.Context, trackingCode, eventType string, ts time.Time) error
}

type eventService struct {
	shipmentRepo ports.ShipmentRepository
	eventRepo    ports.EventRepository
	publisher    ports.RealtimePublisher
	dedup        DedupChecker
	log          zerolog.Logger
}

// NewEventService returns an EventService that appends courier telemetry to
// the tracking event log and pushes it to the shipment's realtime feed.
func NewEventService(
	shipmentRepo ports.ShipmentRepository,
	eventRepo ports.EventRepository,
	publisher ports.RealtimePublisher,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.EventService {
	return &eventService{
		shipmentRepo: shipmentRepo,
		eventRepo:    eventRepo,
		publisher:    publisher,
		dedup:        dedup,
		log:          log,
	}
}

// Process validates, deduplicates and persists a single tracking event.
func (s *eventService) Process(ctx context.Context, in ports.TrackingEventInput) error {
	if in.EventType == "" {
		return fmt.Errorf("%w: event type is required", domain.ErrValidation)
	}

	// Idempotency check, silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.TrackingCode, in.EventType, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking_code", in.TrackingCode).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("tracking_code", in.TrackingCode).Str("event_type", in.EventType).Msg("duplicate event skipped")
		return nil
	}

	shipment, err := s.shipmentRepo.FindByTrackingCode(ctx, in.TrackingCode)
	if err != nil {
		return fmt.Errorf("process event: %w", err)
	}

	// Mark as processed before writing so retries do not double-append.
	if markErr := s.dedup.Mark(ctx, in.TrackingCode, in.EventType, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("tracking_code", in.TrackingCode).Msg("failed to set dedup key")
	}

	event := &domain.TrackingEvent{
		ID:          uuid.NewString(),
		ShipmentID:  shipment.ID,
		EventType:   in.EventType,
		Description: in.Description,
		RecordedAt:  in.Timestamp,
	}
	if in.Location != nil {
		event.Location = &domain.Coordinates{Lat: in.Location.Lat, Lng: in.Location.Lng}
	}
	if in.Telemetry != nil {
		event.Telemetry = &domain.Telemetry{
			SpeedKmh:  in.Telemetry.SpeedKmh,
			Heading:   in.Telemetry.Heading,
			AccuracyM: in.Telemetry.AccuracyM,
		}
	}

	if err := s.eventRepo.Insert(ctx, event); err != nil {
		return fmt.Errorf("process event: insert: %w", err)
	}

	// Listener notification is a separate contract from the write.
	if err := s.publisher.PublishTrackingEvent(ctx, event); err != nil {
		s.log.Warn().Err(err).Str("tracking_code", in.TrackingCode).Msg("event publish failed, record persisted")
	}

	s.log.Info().
		Str("tracking_code", in.TrackingCode).
		Str("event_type", in.EventType).
		Msg("event processed")

	return nil
}
