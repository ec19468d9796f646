package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const LockCollectionName = "Booking_locks"

// MongoLock uses the unique _id of the lock collection as the mutex. A TTL
// index on expires_at reaps abandoned documents; expired ones still present
// are taken over in Lock.
type MongoLock struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoLock(db *mongo.Database) *MongoLock {
	return &MongoLock{
		collection: db.Collection(LockCollectionName),
		now:        time.Now,
	}
}

func (m *MongoLock) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	const op = "lock.MongoLock.Lock"

	now := m.now().UTC()
	doc := &model.BookingLock{
		ID:        key,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	_, err := m.collection.InsertOne(ctx, doc)
	if err == nil {
		return true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.collection.DeleteOne(ctx, bson.M{"_id": key, "expires_at": bson.M{"$lte": now}})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return false, nil
	}

	if _, err := m.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (m *MongoLock) Unlock(ctx context.Context, key string) error {
	const op = "lock.MongoLock.Unlock"

	if _, err := m.collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
