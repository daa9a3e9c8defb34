package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shipease/logistics-api/internal/core/domain"
	"github.com/shipease/logistics-api/internal/core/geo"
	"github.com/shipease/logistics-api/internal/core/ports"
	"github.com/shipease/logistics-api/internal/core/pricing"
	"github.com/shipease/logistics-api/internal/core/trackcode"
)

// assumedDistanceKm substitutes for a real routed distance when neither
// coordinates nor an explicit distance accompany the shipment.
const assumedDistanceKm = 100

const eventHistoryLimit = 50

type ShipmentService struct {
	repo      ports.ShipmentRepository
	eventRepo ports.EventRepository
	profiles  ports.AuthRepository
	notifier  ports.Notifier
	publisher ports.RealtimePublisher
	logger    zerolog.Logger
}

func NewShipmentService(
	repo ports.ShipmentRepository,
	eventRepo ports.EventRepository,
	profiles ports.AuthRepository,
	notifier ports.Notifier,
	publisher ports.RealtimePublisher,
	logger zerolog.Logger,
) *ShipmentService {
	return &ShipmentService{
		repo:      repo,
		eventRepo: eventRepo,
		profiles:  profiles,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateShipment quotes, codes and persists a new shipment, then records the
// initial tracking event and notifies the customer. The event append and the
// notification are best-effort: the created shipment stands even when they fail.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*ports.ShipmentResult, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	distance := resolveDistance(input)

	price, err := pricing.Quote(input.WeightKg, distance, input.ServiceType)
	if err != nil {
		return nil, err
	}

	eta, err := geo.EstimateETA(distance, geo.DefaultSpeedKmh)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	shipment := &domain.Shipment{
		TrackingCode:     trackcode.Generate(),
		CustomerID:       input.CustomerID,
		SenderName:       input.SenderName,
		SenderPhone:      input.SenderPhone,
		SenderAddress:    toAddress(input.SenderAddress),
		RecipientName:    input.RecipientName,
		RecipientPhone:   input.RecipientPhone,
		RecipientEmail:   input.RecipientEmail,
		RecipientAddress: toAddress(input.RecipientAddress),
		WeightKg:         input.WeightKg,
		Dimensions: domain.Dimensions{
			Length: input.Dimensions.Length,
			Width:  input.Dimensions.Width,
			Height: input.Dimensions.Height,
			Unit:   "cm",
		},
		ServiceType:       input.ServiceType,
		SpecialNotes:      input.SpecialNotes,
		Status:            domain.StatusPending,
		PriceQuoted:       price,
		CreatedAt:         now,
		UpdatedAt:         now,
		EstimatedDelivery: eta,
	}
	if input.Origin != nil {
		shipment.Origin = domain.Coordinates{Lat: input.Origin.Lat, Lng: input.Origin.Lng}
	}
	if input.Destination != nil {
		shipment.Destination = domain.Coordinates{Lat: input.Destination.Lat, Lng: input.Destination.Lng}
	}

	if err := s.repo.Create(ctx, shipment); err != nil {
		// Collision on the unique tracking_code index: regenerate once.
		if errors.Is(err, domain.ErrDuplicateTrackingCode) {
			shipment.TrackingCode = trackcode.Generate()
			err = s.repo.Create(ctx, shipment)
		}
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to create shipment")
			return nil, err
		}
	}

	s.appendEvent(ctx, &domain.TrackingEvent{
		ShipmentID:  shipment.ID,
		EventType:   domain.EventCreated,
		Description: "Shipment created and awaiting pickup",
		RecordedAt:  now,
	})

	if err := s.notifier.ShipmentCreated(ctx, input.CustomerID, shipment.TrackingCode, input.RecipientName); err != nil {
		s.logger.Warn().Err(err).Str("tracking_code", shipment.TrackingCode).Msg("creation notification failed")
	}

	s.logger.Info().
		Str("tracking_code", shipment.TrackingCode).
		Str("customer_id", input.CustomerID).
		Float64("price_quoted", price).
		Msg("shipment created")

	return &ports.ShipmentResult{
		TrackingCode:      shipment.TrackingCode,
		Status:            string(shipment.Status),
		PriceQuoted:       price,
		CreatedAt:         shipment.CreatedAt,
		EstimatedDelivery: shipment.EstimatedDelivery,
	}, nil
}

// Track returns the public tracking view for a code: the shipment, its event
// history and the latest known position.
func (s *ShipmentService) Track(ctx context.Context, code string) (*ports.TrackingView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !trackcode.IsValid(code) {
		return nil, fmt.Errorf("%w: malformed tracking code %q", domain.ErrValidation, code)
	}

	shipment, err := s.repo.FindByTrackingCode(ctx, code)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByShipment(ctx, shipment.ID, eventHistoryLimit)
	if err != nil {
		s.logger.Warn().Err(err).Str("tracking_code", code).Msg("event history lookup failed")
		events = nil
	}

	latest, err := s.eventRepo.LatestPosition(ctx, shipment.ID)
	if err != nil {
		latest = nil // no position reported yet
	}

	view := &ports.TrackingView{
		Shipment:       shipment,
		StatusLabel:    shipment.Status.Label(),
		StatusColor:    shipment.Status.Color(),
		Events:         events,
		LatestPosition: latest,
	}
	if !shipment.Status.IsTerminal() && !shipment.EstimatedDelivery.IsZero() {
		view.ETARemaining = geo.FormatRemaining(shipment.EstimatedDelivery)
	}
	return view, nil
}

// ListShipments returns a page of shipments scoped by the caller's role:
// customers see their own, couriers see their assignments, dispatchers and
// admins see everything.
func (s *ShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := ports.ListShipmentsFilter{
		Status:      input.Status,
		ServiceType: input.ServiceType,
		Search:      input.Search,
		DateFrom:    input.DateFrom,
		DateTo:      input.DateTo,
		Page:        page,
		Limit:       limit,
	}
	switch input.Role {
	case domain.RoleCustomer:
		filter.CustomerID = input.UserID
	case domain.RoleCourier:
		filter.CourierID = input.UserID
	case domain.RoleDispatcher, domain.RoleAdmin:
		// unscoped
	default:
		return nil, domain.ErrForbidden
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListShipmentsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// AssignCourier is the dispatcher operation: it binds a courier to a pending
// shipment, records the assignment event, and dispatches two notifications,
// one to the courier and one to the customer.
func (s *ShipmentService) AssignCourier(ctx context.Context, input ports.AssignCourierInput) error {
	if input.ActorRole != domain.RoleDispatcher && input.ActorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	shipment, err := s.repo.FindByID(ctx, input.ShipmentID)
	if err != nil {
		return err
	}
	if !shipment.Status.CanTransitionTo(domain.StatusAssigned) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, shipment.Status, domain.StatusAssigned)
	}

	courier, err := s.profiles.FindByID(ctx, input.CourierID)
	if err != nil {
		return fmt.Errorf("%w: unknown courier %s", domain.ErrValidation, input.CourierID)
	}
	if courier.Role != domain.RoleCourier {
		return fmt.Errorf("%w: profile %s is not a courier", domain.ErrValidation, input.CourierID)
	}

	now := time.Now().UTC()
	if err := s.repo.AssignCourier(ctx, shipment.ID, courier.ID, now); err != nil {
		return err
	}

	s.appendEvent(ctx, &domain.TrackingEvent{
		ShipmentID:  shipment.ID,
		EventType:   string(domain.StatusAssigned),
		Description: "Courier assigned by dispatcher",
		RecordedAt:  now,
	})

	destination := shipment.RecipientAddress.City
	if destination == "" {
		destination = "destination"
	}
	if err := s.notifier.CourierAssigned(ctx, courier.ID, shipment.TrackingCode, destination); err != nil {
		s.logger.Warn().Err(err).Str("tracking_code", shipment.TrackingCode).Msg("courier assignment notification failed")
	}
	if err := s.notifier.CustomerAssigned(ctx, shipment.CustomerID, shipment.TrackingCode, courier.FullName); err != nil {
		s.logger.Warn().Err(err).Str("tracking_code", shipment.TrackingCode).Msg("customer assignment notification failed")
	}

	s.logger.Info().
		Str("tracking_code", shipment.TrackingCode).
		Str("courier_id", courier.ID).
		Msg("courier assigned")
	return nil
}

// UpdateStatus applies a courier's (or dispatcher's) status change, records
// the event and dispatches the matching customer notification. The status
// write is authoritative; a failed notification is logged, never rolled back.
func (s *ShipmentService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) error {
	newStatus := domain.Status(input.Status)
	if !newStatus.IsValid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}

	shipment, err := s.repo.FindByID(ctx, input.ShipmentID)
	if err != nil {
		return err
	}

	if input.ActorRole == domain.RoleCourier && shipment.AssignedCourierID != input.ActorID {
		return domain.ErrForbidden
	}
	if input.ActorRole == domain.RoleCustomer {
		return domain.ErrForbidden
	}

	if !shipment.Status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, shipment.Status, newStatus)
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, shipment.ID, newStatus, now); err != nil {
		return err
	}

	description := input.Note
	if description == "" {
		description = newStatus.Label()
	}
	s.appendEvent(ctx, &domain.TrackingEvent{
		ShipmentID:  shipment.ID,
		EventType:   string(newStatus),
		Description: description,
		RecordedAt:  now,
	})

	s.notifyStatusChange(ctx, shipment, newStatus, input.Note)

	s.logger.Info().
		Str("tracking_code", shipment.TrackingCode).
		Str("status", string(newStatus)).
		Msg("shipment status updated")
	return nil
}

// notifyStatusChange maps a transition onto its customer notification.
func (s *ShipmentService) notifyStatusChange(ctx context.Context, shipment *domain.Shipment, status domain.Status, note string) {
	var err error
	switch status {
	case domain.StatusPickedUp:
		err = s.notifier.PickedUp(ctx, shipment.CustomerID, shipment.TrackingCode)
	case domain.StatusOutForDelivery:
		err = s.notifier.OutForDelivery(ctx, shipment.CustomerID, shipment.TrackingCode)
	case domain.StatusDelivered:
		err = s.notifier.Delivered(ctx, shipment.CustomerID, shipment.TrackingCode)
	case domain.StatusException, domain.StatusFailed:
		reason := note
		if reason == "" {
			reason = status.Label()
		}
		err = s.notifier.ExceptionRaised(ctx, shipment.CustomerID, shipment.TrackingCode, reason)
	default:
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).
			Str("tracking_code", shipment.TrackingCode).
			Str("status", string(status)).
			Msg("status notification failed")
	}
}

// appendEvent writes to the append-only log and pushes to the realtime feed.
// Both are non-fatal for the calling workflow.
func (s *ShipmentService) appendEvent(ctx context.Context, event *domain.TrackingEvent) {
	if err := s.eventRepo.Insert(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("shipment_id", event.ShipmentID).Msg("failed to append tracking event")
		return
	}
	if err := s.publisher.PublishTrackingEvent(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("shipment_id", event.ShipmentID).Msg("tracking event publish failed")
	}
}

func validateCreateInput(input ports.CreateShipmentInput) error {
	switch {
	case input.CustomerID == "":
		return fmt.Errorf("%w: customer id is required", domain.ErrValidation)
	case input.RecipientName == "":
		return fmt.Errorf("%w: recipient name is required", domain.ErrValidation)
	case input.RecipientAddress.Line1 == "" || input.RecipientAddress.City == "":
		return fmt.Errorf("%w: recipient address is incomplete", domain.ErrValidation)
	case input.WeightKg <= 0:
		return fmt.Errorf("%w: weight must be positive, got %v", domain.ErrValidation, input.WeightKg)
	}
	return nil
}

// resolveDistance prefers an explicit distance, then a haversine distance
// from coordinates, then the assumed placeholder.
func resolveDistance(input ports.CreateShipmentInput) float64 {
	if input.DistanceKm != nil && *input.DistanceKm >= 0 {
		return *input.DistanceKm
	}
	if input.Origin != nil && input.Destination != nil {
		return geo.DistanceKm(input.Origin.Lat, input.Origin.Lng, input.Destination.Lat, input.Destination.Lng)
	}
	return assumedDistanceKm
}

func toAddress(a ports.AddressInput) domain.Address {
	return domain.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
