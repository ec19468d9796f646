package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Booking is a ride reservation. Every status except cancelled occupies capacity.
type Booking struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	Date            string    `json:"date" bson:"date" validate:"required,calendar_date"`
	PickupTime      string    `json:"pickup_time" bson:"pickup_time" validate:"required,time_of_day"`
	Status          string    `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	ServiceType     string    `json:"service_type" bson:"service_type" validate:"required,min=2,max=50"`
	CustomerName    string    `json:"customer_name" bson:"customer_name" validate:"required,min=2,max=100"`
	CustomerEmail   string    `json:"customer_email" bson:"customer_email" validate:"required,email"`
	CustomerPhone   string    `json:"customer_phone,omitempty" bson:"customer_phone" validate:"omitempty,e164"`
	PickupLocation  string    `json:"pickup_location" bson:"pickup_location" validate:"required,min=2,max=300"`
	DropoffLocation string    `json:"dropoff_location,omitempty" bson:"dropoff_location" validate:"omitempty,max=300"`
	Passengers      int       `json:"passengers" bson:"passengers" validate:"required,min=1,max=60"`
	Notes           string    `json:"notes,omitempty" bson:"notes" validate:"omitempty,max=1000"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// OccupiesCapacity reports whether the booking blocks time on its date.
func (b *Booking) OccupiesCapacity() bool {
	return b.Status != StatusCancelled
}

type BookingUpdate struct {
	Date            string  `json:"date,omitempty"`
	PickupTime      string  `json:"pickup_time,omitempty"`
	Status          string  `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	CustomerName    string  `json:"customer_name,omitempty"`
	CustomerEmail   string  `json:"customer_email,omitempty"`
	CustomerPhone   *string `json:"customer_phone,omitempty"`
	PickupLocation  string  `json:"pickup_location,omitempty"`
	DropoffLocation *string `json:"dropoff_location,omitempty"`
	Passengers      *int    `json:"passengers,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}
