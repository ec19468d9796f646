package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	manualerrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	mongotx "github.com/TPetrica/elite-transportation-backend-sub000/pkg/db/mongo"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "ManualBookings"
)

type mongoManualBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type ManualBookingRepository interface {
	Create(ctx context.Context, mb *model.ManualBooking) error
	FindByID(ctx context.Context, id string) (*model.ManualBooking, error)
	FindActive(ctx context.Context, date string) ([]*model.ManualBooking, error)
	ListByDate(ctx context.Context, date string) ([]*model.ManualBooking, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

func NewMongoManualBookingRepository(cfg *config.Config) ManualBookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoManualBookingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoManualBookingRepository) Create(ctx context.Context, mb *model.ManualBooking) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	mb.CreatedAt = now
	mb.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, mb)
	if err != nil {
		return fmt.Errorf("failed to create manual booking: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		mb.ID = oid.Hex()
	}
	return nil
}

func (r *mongoManualBookingRepository) FindByID(ctx context.Context, id string) (*model.ManualBooking, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", manualerrors.ErrInvalidID, id)
	}

	var mb model.ManualBooking
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", manualerrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find manual booking: %w", err)
	}
	return &mb, nil
}

// FindActive returns only the blocks that consume capacity on date.
func (r *mongoManualBookingRepository) FindActive(ctx context.Context, date string) ([]*model.ManualBooking, error) {
	return r.find(ctx, bson.M{"date": date, "is_active": true},
		options.Find().SetProjection(bson.M{"start_time": 1, "end_time": 1, "date": 1, "is_active": 1}))
}

func (r *mongoManualBookingRepository) ListByDate(ctx context.Context, date string) ([]*model.ManualBooking, error) {
	return r.find(ctx, bson.M{"date": date}, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
}

func (r *mongoManualBookingRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.ManualBooking, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query manual bookings: %w", err)
	}
	defer cursor.Close(ctx)

	blocks := []*model.ManualBooking{}
	if err = cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode manual bookings: %w", err)
	}
	return blocks, nil
}

func (r *mongoManualBookingRepository) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", manualerrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"is_active":  active,
			"updated_at": time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update manual booking: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", manualerrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoManualBookingRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", manualerrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete manual booking: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", manualerrors.ErrNotFound, id)
	}
	return nil
}
