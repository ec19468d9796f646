package service

import (
	"context"
	"time"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/kafka"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/middleware"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/model"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingUpdated   = "booking.updated"
	EventBookingCancelled = "booking.cancelled"

	eventSchemaVersion = "1"
	eventSource        = "bookings"
)

// BookingEvent is the payload of every booking lifecycle message.
type BookingEvent struct {
	BookingID   string    `json:"booking_id"`
	Date        string    `json:"date"`
	PickupTime  string    `json:"pickup_time"`
	Status      string    `json:"status"`
	ServiceType string    `json:"service_type"`
	Passengers  int       `json:"passengers"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func newBookingEvent(b *model.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		BookingID:   b.ID,
		Date:        b.Date,
		PickupTime:  b.PickupTime,
		Status:      b.Status,
		ServiceType: b.ServiceType,
		Passengers:  b.Passengers,
		OccurredAt:  at.UTC(),
	}
}

// publish emits a lifecycle event after the booking is stored. The write has
// already succeeded, so a publish failure is logged and not returned.
func (s *bookingService) publish(ctx context.Context, eventType string, b *model.Booking) {
	if s.publisher == nil {
		return
	}

	msg, err := kafka.NewMessage().
		WithKey(b.ID).
		WithValue(newBookingEvent(b, time.Now())).
		WithEventType(eventType).
		WithSchemaVersion(eventSchemaVersion).
		WithSource(eventSource).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		Build()
	if err != nil {
		s.cfg.Log.Error("Failed to build booking event", "event_type", eventType, "booking_id", b.ID, "error", err)
		return
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", b.ID,
			"error", err,
		)
	}
}
