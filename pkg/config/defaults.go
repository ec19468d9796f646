package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "elite_transportation"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultRedisDB = 0

	DefaultKafkaBookingTopic    = "bookings.events"
	DefaultKafkaBookingDLQTopic = "bookings.events.dlq"

	DefaultTimeZone            = "America/Denver"
	DefaultSlotInterval        = 30 * time.Minute
	DefaultBookingBufferBefore = 30 * time.Minute
	DefaultBookingBufferAfter  = 60 * time.Minute
	DefaultMinLeadTime         = 2 * time.Hour
	DefaultBookingLockTTL      = 10 * time.Second
)
