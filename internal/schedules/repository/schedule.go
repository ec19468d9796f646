package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	scheduleserrors "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/errors"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	mongotx "github.com/TPetrica/elite-transportation-backend-sub000/pkg/db/mongo"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "WeekdaySchedules"
)

type mongoScheduleRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
	txManager  mongotx.TransactionManager
}

type ScheduleRepository interface {
	FindByDay(ctx context.Context, dayOfWeek int) (*model.WeekdaySchedule, error)
	FindAll(ctx context.Context) ([]*model.WeekdaySchedule, error)
	Upsert(ctx context.Context, sc *model.WeekdaySchedule) error
	DeleteAll(ctx context.Context) error
	ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error
}

func NewMongoScheduleRepository(cfg *config.Config) ScheduleRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoScheduleRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
		txManager:  mongotx.NewTransactionManager(cfg.Client.Mongo),
	}
}

func (r *mongoScheduleRepository) FindByDay(ctx context.Context, dayOfWeek int) (*model.WeekdaySchedule, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var sc model.WeekdaySchedule
	err := r.collection.FindOne(ctx, bson.M{"day_of_week": dayOfWeek}).Decode(&sc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: day %d", scheduleserrors.ErrNotFound, dayOfWeek)
		}
		return nil, fmt.Errorf("failed to find schedule for day %d: %w", dayOfWeek, err)
	}
	return &sc, nil
}

func (r *mongoScheduleRepository) FindAll(ctx context.Context) ([]*model.WeekdaySchedule, error) {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedules: %w", err)
	}
	defer cursor.Close(ctx)

	schedules := []*model.WeekdaySchedule{}
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return schedules, nil
}

// Upsert writes the schedule for sc.DayOfWeek, creating it if absent.
func (r *mongoScheduleRepository) Upsert(ctx context.Context, sc *model.WeekdaySchedule) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	sc.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)
	filter := bson.M{"day_of_week": sc.DayOfWeek}
	update := bson.M{
		"$set": bson.M{
			"day_of_week": sc.DayOfWeek,
			"is_enabled":  sc.IsEnabled,
			"time_ranges": sc.TimeRanges,
			"updated_at":  sc.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert schedule for day %d: %w", sc.DayOfWeek, err)
	}
	if oid, ok := result.UpsertedID.(primitive.ObjectID); ok {
		sc.ID = oid.Hex()
	}
	return nil
}

func (r *mongoScheduleRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := mongotx.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete schedules: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return r.txManager.ExecuteTransaction(ctx, fn)
}
