package model

import "time"

// ManualBooking is an administrative block (maintenance, phone booking) over an explicit range.
type ManualBooking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Date      string    `json:"date" bson:"date" validate:"required,calendar_date"`
	StartTime string    `json:"start_time" bson:"start_time" validate:"required,time_of_day"`
	EndTime   string    `json:"end_time" bson:"end_time" validate:"required,time_of_day"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	Reason    string    `json:"reason,omitempty" bson:"reason" validate:"omitempty,max=200"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
