package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shipease/logistics-api/internal/core/domain"
)

const collectionEvents = "tracking_events"

// EventRepository implements ports.EventRepository using MongoDB. The
// collection is append-only: documents are never updated or deleted.
type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

func (r *EventRepository) Insert(ctx context.Context, event *domain.TrackingEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if event.ID == "" {
		event.ID = primitive.NewObjectID().Hex()
	}
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now().UTC()
	}

	if _, err := r.col.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("%w: insert event: %v", domain.ErrPersistence, err)
	}
	return nil
}

// ListByShipment returns events for a shipment ordered newest first.
func (r *EventRepository) ListByShipment(ctx context.Context, shipmentID string, limit int) ([]*domain.TrackingEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "recorded_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"shipment_id": shipmentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", domain.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var events []*domain.TrackingEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("%w: decode events: %v", domain.ErrPersistence, err)
	}
	return events, nil
}

// LatestPosition returns the most recent event that carries coordinates.
func (r *EventRepository) LatestPosition(ctx context.Context, shipmentID string) (*domain.TrackingEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"shipment_id": shipmentID,
		"location":    bson.M{"$ne": nil},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "recorded_at", Value: -1}})

	var event domain.TrackingEvent
	err := r.col.FindOne(ctx, filter, opts).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("%w: latest position: %v", domain.ErrPersistence, err)
	}
	return &event, nil
}

// EnsureIndexes creates the compound index serving history and position queries.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "shipment_id", Value: 1}, {Key: "recorded_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
