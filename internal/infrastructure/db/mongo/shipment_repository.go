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
	"github.com/shipease/logistics-api/internal/core/ports"
)

const collectionShipments = "shipments"

type ShipmentRepository struct {
	col *mongo.Collection
}

func NewShipmentRepository(db *mongo.Database) *ShipmentRepository {
	return &ShipmentRepository{col: db.Collection(collectionShipments)}
}

// Create inserts a new shipment document. A unique-index violation on
// tracking_code maps to domain.ErrDuplicateTrackingCode so the service can
// regenerate the code.
func (r *ShipmentRepository) Create(ctx context.Context, s *domain.Shipment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if s.ID == "" {
		s.ID = primitive.NewObjectID().Hex()
	}

	_, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTrackingCode
		}
		return fmt.Errorf("%w: insert shipment: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *ShipmentRepository) FindByTrackingCode(ctx context.Context, trackingCode string) (*domain.Shipment, error) {
	return r.findOne(ctx, bson.M{"tracking_code": trackingCode})
}

func (r *ShipmentRepository) FindByID(ctx context.Context, id string) (*domain.Shipment, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ShipmentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Shipment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Shipment
	err := r.col.FindOne(ctx, filter).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("%w: find shipment: %v", domain.ErrPersistence, err)
	}
	return &s, nil
}

// List returns a page of shipments matching filter plus the total count.
func (r *ShipmentRepository) List(ctx context.Context, filter ports.ListShipmentsFilter) ([]*domain.Shipment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.CustomerID != "" {
		query["customer_id"] = filter.CustomerID
	}
	if filter.CourierID != "" {
		query["assigned_courier_id"] = filter.CourierID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ServiceType != "" {
		query["service_type"] = filter.ServiceType
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"tracking_code": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"recipient_name": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	dateRange := bson.M{}
	if !filter.DateFrom.IsZero() {
		dateRange["$gte"] = filter.DateFrom
	}
	if !filter.DateTo.IsZero() {
		dateRange["$lte"] = filter.DateTo
	}
	if len(dateRange) > 0 {
		query["created_at"] = dateRange
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: count shipments: %v", domain.ErrPersistence, err)
	}

	skip := int64((filter.Page - 1) * filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list shipments: %v", domain.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var items []*domain.Shipment
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("%w: decode shipments: %v", domain.ErrPersistence, err)
	}
	return items, total, nil
}

// AssignCourier binds the courier and moves the shipment to assigned.
func (r *ShipmentRepository) AssignCourier(ctx context.Context, id, courierID string, ts time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"assigned_courier_id": courierID,
		"status":              string(domain.StatusAssigned),
		"updated_at":          ts.UTC(),
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("%w: assign courier: %v", domain.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

// UpdateStatus sets the new status and stamps actual_pickup / actual_delivery
// for the transitions that define them.
func (r *ShipmentRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, ts time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":     string(status),
		"updated_at": ts.UTC(),
	}
	switch status {
	case domain.StatusPickedUp:
		set["actual_pickup"] = ts.UTC()
	case domain.StatusDelivered:
		set["actual_delivery"] = ts.UTC()
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("%w: update status: %v", domain.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

func (r *ShipmentRepository) UpdateETA(ctx context.Context, id string, eta time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"estimated_delivery": eta.UTC()}})
	if err != nil {
		return fmt.Errorf("%w: update eta: %v", domain.ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrShipmentNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the shipments collection. The
// unique tracking_code index is the collision backstop for code generation.
func (r *ShipmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "tracking_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_courier_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
