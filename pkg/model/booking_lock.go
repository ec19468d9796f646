package model

import "time"

// BookingLock is an advisory lock document keyed by pickup date and time.
// The _id unique index makes a second insert for the same slot fail.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
