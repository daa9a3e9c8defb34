package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shipease/logistics-api/internal/core/domain"
	"github.com/shipease/logistics-api/internal/core/ports"
)

// In-memory doubles for the persistence and realtime ports.

type stubShipmentRepo struct {
	byID       map[string]*domain.Shipment
	byCode     map[string]*domain.Shipment
	created    []*domain.Shipment
	createErrs []error // consumed one per Create call; nil means success
	listItems  []*domain.Shipment
	listTotal  int64
	lastFilter ports.ListShipmentsFilter
	assignedTo map[string]string
	statuses   map[string]domain.Status
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{
		byID:       make(map[string]*domain.Shipment),
		byCode:     make(map[string]*domain.Shipment),
		assignedTo: make(map[string]string),
		statuses:   make(map[string]domain.Status),
	}
}

func (r *stubShipmentRepo) add(s *domain.Shipment) {
	r.byID[s.ID] = s
	r.byCode[s.TrackingCode] = s
}

func (r *stubShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		if err != nil {
			return err
		}
	}
	s.ID = fmt.Sprintf("ship_%d", len(r.created)+1)
	r.created = append(r.created, s)
	r.add(s)
	return nil
}

func (r *stubShipmentRepo) FindByTrackingCode(_ context.Context, code string) (*domain.Shipment, error) {
	if s, ok := r.byCode[code]; ok {
		return s, nil
	}
	return nil, domain.ErrShipmentNotFound
}

func (r *stubShipmentRepo) FindByID(_ context.Context, id string) (*domain.Shipment, error) {
	if s, ok := r.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrShipmentNotFound
}

func (r *stubShipmentRepo) List(_ context.Context, filter ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	r.lastFilter = filter
	return r.listItems, r.listTotal, nil
}

func (r *stubShipmentRepo) AssignCourier(_ context.Context, id, courierID string, _ time.Time) error {
	r.assignedTo[id] = courierID
	if s, ok := r.byID[id]; ok {
		s.AssignedCourierID = courierID
		s.Status = domain.StatusAssigned
	}
	return nil
}

func (r *stubShipmentRepo) UpdateStatus(_ context.Context, id string, status domain.Status, _ time.Time) error {
	r.statuses[id] = status
	if s, ok := r.byID[id]; ok {
		s.Status = status
	}
	return nil
}

func (r *stubShipmentRepo) UpdateETA(_ context.Context, id string, eta time.Time) error {
	if s, ok := r.byID[id]; ok {
		s.EstimatedDelivery = eta
	}
	return nil
}

type stubEventRepo struct {
	events    []*domain.TrackingEvent
	insertErr error
}

func (r *stubEventRepo) Insert(_ context.Context, event *domain.TrackingEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.events = append(r.events, event)
	return nil
}

func (r *stubEventRepo) ListByShipment(_ context.Context, shipmentID string, limit int) ([]*domain.TrackingEvent, error) {
	var out []*domain.TrackingEvent
	for _, e := range r.events {
		if e.ShipmentID == shipmentID {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubEventRepo) LatestPosition(_ context.Context, shipmentID string) (*domain.TrackingEvent, error) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].ShipmentID == shipmentID && r.events[i].Location != nil {
			return r.events[i], nil
		}
	}
	return nil, domain.ErrShipmentNotFound
}

type stubNotificationRepo struct {
	inserted      []*domain.Notification
	insertErr     error
	insertManyErr error
	markedRead    []string
	deleted       []string
	unread        int64
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, n)
	return nil
}

func (r *stubNotificationRepo) InsertMany(_ context.Context, ns []*domain.Notification) error {
	if r.insertManyErr != nil {
		return r.insertManyErr
	}
	r.inserted = append(r.inserted, ns...)
	return nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool, limit int) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.inserted {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubNotificationRepo) CountUnread(_ context.Context, _ string) (int64, error) {
	return r.unread, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id, _ string, _ time.Time) error {
	r.markedRead = append(r.markedRead, id)
	return nil
}

func (r *stubNotificationRepo) Delete(_ context.Context, id, _ string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type stubPublisher struct {
	notifications []*domain.Notification
	events        []*domain.TrackingEvent
	notifErr      error
	eventErr      error
}

func (p *stubPublisher) PublishNotification(_ context.Context, n *domain.Notification) error {
	if p.notifErr != nil {
		return p.notifErr
	}
	p.notifications = append(p.notifications, n)
	return nil
}

func (p *stubPublisher) PublishTrackingEvent(_ context.Context, e *domain.TrackingEvent) error {
	if p.eventErr != nil {
		return p.eventErr
	}
	p.events = append(p.events, e)
	return nil
}

type stubProfileRepo struct {
	byID    map[string]*domain.Profile
	byEmail map[string]*domain.Profile
	created []*domain.Profile
}

func newStubProfileRepo(profiles ...*domain.Profile) *stubProfileRepo {
	r := &stubProfileRepo{
		byID:    make(map[string]*domain.Profile),
		byEmail: make(map[string]*domain.Profile),
	}
	for _, p := range profiles {
		r.byID[p.ID] = p
		r.byEmail[p.Email] = p
	}
	return r
}

func (r *stubProfileRepo) FindByEmail(_ context.Context, email string) (*domain.Profile, error) {
	if p, ok := r.byEmail[email]; ok {
		return p, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubProfileRepo) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubProfileRepo) Create(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if _, exists := r.byEmail[profile.Email]; exists {
		return nil, domain.ErrUserExists
	}
	profile.ID = fmt.Sprintf("user_%d", len(r.created)+1)
	r.created = append(r.created, profile)
	r.byID[profile.ID] = profile
	r.byEmail[profile.Email] = profile
	return profile, nil
}

func (r *stubProfileRepo) ListByRole(_ context.Context, role string) ([]*domain.Profile, error) {
	var out []*domain.Profile
	for _, p := range r.created {
		if p.Role == role {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubDedup struct {
	dup      bool
	checkErr error
	marked   []string
}

func (d *stubDedup) IsDuplicate(_ context.Context, trackingCode, eventType string, _ time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.dup, nil
}

func (d *stubDedup) Mark(_ context.Context, trackingCode, eventType string, _ time.Time) error {
	d.marked = append(d.marked, trackingCode+":"+eventType)
	return nil
}
