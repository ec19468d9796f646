package service

import (
	"time"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
)

// Policy holds the tunables of the slot computation.
type Policy struct {
	// SlotInterval is the spacing of the candidate grid starting at 00:00.
	SlotInterval time.Duration
	// BufferBefore and BufferAfter pad a booking's pickup time into the
	// window it blocks.
	BufferBefore time.Duration
	BufferAfter  time.Duration
	// MinLeadTime excludes today's ticks at or before now + MinLeadTime.
	MinLeadTime time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		SlotInterval: config.DefaultSlotInterval,
		BufferBefore: config.DefaultBookingBufferBefore,
		BufferAfter:  config.DefaultBookingBufferAfter,
		MinLeadTime:  config.DefaultMinLeadTime,
	}
}

// PolicyFromConfig reads the policy from cfg. A config without a slot
// interval yields DefaultPolicy.
func PolicyFromConfig(cfg *config.Config) Policy {
	if cfg == nil || cfg.SlotInterval <= 0 {
		return DefaultPolicy()
	}
	return Policy{
		SlotInterval: cfg.SlotInterval,
		BufferBefore: cfg.BookingBufferBefore,
		BufferAfter:  cfg.BookingBufferAfter,
		MinLeadTime:  cfg.MinLeadTime,
	}
}
