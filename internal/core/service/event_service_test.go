package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/shipease/logistics-api/internal/core/domain"
	"github.com/shipease/logistics-api/internal/core/ports"
)

func newEventFixture() (ports.EventService, *stubShipmentRepo, *stubEventRepo, *stubPublisher, *stubDedup) {
	shipmentRepo := newStubShipmentRepo()
	eventRepo := &stubEventRepo{}
	pub := &stubPublisher{}
	dedup := &stubDedup{}
	svc := NewEventService(shipmentRepo, eventRepo, pub, dedup, zerolog.Nop())
	return svc, shipmentRepo, eventRepo, pub, dedup
}

func locationEvent() ports.TrackingEventInput {
	return ports.TrackingEventInput{
		TrackingCode: "SE-ABCD-EFGH-JKLM",
		EventType:    domain.EventLocationUpdate,
		Timestamp:    time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		Location:     &ports.LocationInput{Lat: 19.43, Lng: -99.13},
		Telemetry:    &ports.TelemetryInput{SpeedKmh: 35, Heading: 180, AccuracyM: 5},
	}
}

func TestProcess(t *testing.T) {
	svc, shipmentRepo, eventRepo, pub, dedup := newEventFixture()
	shipmentRepo.add(&domain.Shipment{ID: "ship_1", TrackingCode: "SE-ABCD-EFGH-JKLM"})

	if err := svc.Process(context.Background(), locationEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(eventRepo.events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(eventRepo.events))
	}
	e := eventRepo.events[0]
	if e.ID == "" || e.ShipmentID != "ship_1" {
		t.Fatalf("event not linked to shipment: %+v", e)
	}
	if e.Location == nil || e.Location.Lat != 19.43 {
		t.Fatalf("location not carried: %+v", e.Location)
	}
	if e.Telemetry == nil || e.Telemetry.SpeedKmh != 35 {
		t.Fatalf("telemetry not carried: %+v", e.Telemetry)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected realtime publish, got %d", len(pub.events))
	}
	if len(dedup.marked) != 1 {
		t.Fatalf("expected dedup key to be set, got %v", dedup.marked)
	}
}

func TestProcess_SkipsDuplicates(t *testing.T) {
	svc, shipmentRepo, eventRepo, _, dedup := newEventFixture()
	shipmentRepo.add(&domain.Shipment{ID: "ship_1", TrackingCode: "SE-ABCD-EFGH-JKLM"})
	dedup.dup = true

	if err := svc.Process(context.Background(), locationEvent()); err != nil {
		t.Fatalf("duplicate must be skipped silently: %v", err)
	}
	if len(eventRepo.events) != 0 {
		t.Fatalf("duplicate event must not be stored")
	}
}

func TestProcess_DedupCheckFailureProcessesAnyway(t *testing.T) {
	svc, shipmentRepo, eventRepo, _, dedup := newEventFixture()
	shipmentRepo.add(&domain.Shipment{ID: "ship_1", TrackingCode: "SE-ABCD-EFGH-JKLM"})
	dedup.checkErr = errors.New("redis gone")

	if err := svc.Process(context.Background(), locationEvent()); err != nil {
		t.Fatalf("dedup outage must not block processing: %v", err)
	}
	if len(eventRepo.events) != 1 {
		t.Fatalf("event should be stored despite dedup outage")
	}
}

func TestProcess_UnknownTrackingCode(t *testing.T) {
	svc, _, _, _, _ := newEventFixture()
	err := svc.Process(context.Background(), locationEvent())
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestProcess_RequiresEventType(t *testing.T) {
	svc, _, _, _, _ := newEventFixture()
	in := locationEvent()
	in.EventType = ""
	if err := svc.Process(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestProcess_InsertFailureSurfaces(t *testing.T) {
	svc, shipmentRepo, eventRepo, pub, _ := newEventFixture()
	shipmentRepo.add(&domain.Shipment{ID: "ship_1", TrackingCode: "SE-ABCD-EFGH-JKLM"})
	eventRepo.insertErr = domain.ErrPersistence

	err := svc.Process(context.Background(), locationEvent())
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatalf("nothing should be published when the write fails")
	}
}

func TestProcess_PublishFailureIsNotFatal(t *testing.T) {
	svc, shipmentRepo, eventRepo, pub, _ := newEventFixture()
	shipmentRepo.add(&domain.Shipment{ID: "ship_1", TrackingCode: "SE-ABCD-EFGH-JKLM"})
	pub.eventErr = errors.New("channel closed")

	if err := svc.Process(context.Background(), locationEvent()); err != nil {
		t.Fatalf("publish failure must not fail the processing: %v", err)
	}
	if len(eventRepo.events) != 1 {
		t.Fatalf("record must still be persisted")
	}
}
