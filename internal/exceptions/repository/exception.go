package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	exceptionserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	mongotx "github.com/TPetrica/elite-transportation-backend-sub000/pkg/db/mongo"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "DateExceptions"
)

type mongoExceptionRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type ExceptionRepository interface {
	Create(ctx context.Context, exc *model.DateException) error
	FindByID(ctx context.Context, id string) (*model.DateException, error)
	FindByDate(ctx context.Context, date string) (*model.DateException, error)
	List(ctx context.Context, from string, to string) ([]*model.DateException, error)
	Update(ctx context.Context, id string, exc *model.DateException) error
	Delete(ctx context.Context, id string) error
}

func NewMongoExceptionRepository(cfg *config.Config) ExceptionRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoExceptionRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoExceptionRepository) Create(ctx context.Context, exc *model.DateException) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	exc.CreatedAt = now
	exc.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, exc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", exceptionserrors.ErrDuplicateDate, exc.Date)
		}
		return fmt.Errorf("failed to create date exception: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		exc.ID = oid.Hex()
	}
	return nil
}

func (r *mongoExceptionRepository) FindByID(ctx context.Context, id string) (*model.DateException, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", exceptionserrors.ErrInvalidID, id)
	}

	var exc model.DateException
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&exc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", exceptionserrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find date exception: %w", err)
	}
	return &exc, nil
}

func (r *mongoExceptionRepository) FindByDate(ctx context.Context, date string) (*model.DateException, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var exc model.DateException
	err := r.collection.FindOne(ctx, bson.M{"date": date}).Decode(&exc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", exceptionserrors.ErrNotFound, date)
		}
		return nil, fmt.Errorf("failed to find date exception for %s: %w", date, err)
	}
	return &exc, nil
}

// List returns exceptions with from <= date <= to. "YYYY-MM-DD" strings sort
// chronologically, so the range is a plain string comparison.
func (r *mongoExceptionRepository) List(ctx context.Context, from string, to string) ([]*model.DateException, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query date exceptions: %w", err)
	}
	defer cursor.Close(ctx)

	exceptions := []*model.DateException{}
	if err = cursor.All(ctx, &exceptions); err != nil {
		return nil, fmt.Errorf("failed to decode date exceptions: %w", err)
	}
	return exceptions, nil
}

func (r *mongoExceptionRepository) Update(ctx context.Context, id string, exc *model.DateException) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", exceptionserrors.ErrInvalidID, id)
	}

	exc.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	update := bson.M{
		"$set": bson.M{
			"is_enabled":  exc.IsEnabled,
			"type":        exc.Type,
			"time_ranges": exc.TimeRanges,
			"reason":      exc.Reason,
			"updated_at":  exc.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update date exception: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s", exceptionserrors.ErrNotFound, id)
	}
	return nil
}

func (r *mongoExceptionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", exceptionserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete date exception: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", exceptionserrors.ErrNotFound, id)
	}
	return nil
}
