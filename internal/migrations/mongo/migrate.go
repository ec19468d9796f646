package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/TPetrica/elite-transportation-backend-sub000/internal/migrations/mongo/validators"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/logger"
)

const (
	WeekdaySchedulesCollection = "WeekdaySchedules"
	DateExceptionsCollection   = "DateExceptions"
	BookingsCollection         = "Bookings"
	ManualBookingsCollection   = "ManualBookings"
	BookingLocksCollection     = "Booking_locks"
)

// CollectionDef is one collection the migration ensures.
type CollectionDef struct {
	Name      string
	Indexes   []mongo.IndexModel
	Validator bson.M
}

var (
	WeekdaySchedulesIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "day_of_week", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_day_of_week"),
		},
	}

	DateExceptionsIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_date"),
		},
	}

	// At most one capacity-holding booking per pickup slot. Cancelled
	// bookings fall outside the partial filter and never collide.
	BookingsIndexes = []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "date", Value: 1}, {Key: "pickup_time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_active_pickup_slot").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []string{"pending", "confirmed", "completed"}},
				}),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("date_status"),
		},
	}

	ManualBookingsIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("date_is_active"),
		},
	}

	BookingLocksIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0).SetName("ttl_expires_at"),
		},
	}
)

func Collections() []CollectionDef {
	return []CollectionDef{
		{Name: WeekdaySchedulesCollection, Indexes: WeekdaySchedulesIndexes, Validator: validators.WeekdayScheduleValidator},
		{Name: DateExceptionsCollection, Indexes: DateExceptionsIndexes, Validator: validators.DateExceptionValidator},
		{Name: BookingsCollection, Indexes: BookingsIndexes, Validator: validators.BookingValidator},
		{Name: ManualBookingsCollection, Indexes: ManualBookingsIndexes, Validator: validators.ManualBookingValidator},
		{Name: BookingLocksCollection, Indexes: BookingLocksIndexes},
	}
}

func RunMigration(ctx context.Context, db *mongo.Database, log *logger.Logger) error {
	log.Info("Running Mongo migrations", "database", db.Name())

	for _, def := range Collections() {
		if err := ensureCollection(ctx, db, def.Name, def.Validator, log); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", def.Name, err)
		}
		if err := ensureIndexes(ctx, db, def.Name, def.Indexes, log); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", def.Name, err)
		}
	}

	log.Info("All migrations applied successfully")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M, log *logger.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		log.Info("Creating collection", "collection", name)
		opts := options.CreateCollection()
		if validator != nil {
			opts.SetValidator(validator)
		}
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
		return nil
	}

	if validator == nil {
		return nil
	}

	log.Info("Collection already exists, updating validator", "collection", name)
	command := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
	}
	if err := db.RunCommand(ctx, command).Err(); err != nil {
		log.Warn("Failed updating validator", "collection", name, "error", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel, log *logger.Logger) error {
	if len(models) == 0 {
		return nil
	}
	coll := db.Collection(name)
	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		return err
	}
	log.Info("Ensured indexes", "collection", name, "count", len(models))
	return nil
}
