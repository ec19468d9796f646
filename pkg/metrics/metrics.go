package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "elite_transportation"

var (
	once sync.Once

	availabilityComputed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_computed_total",
			Help:      "Count of availability computations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	skippedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_skipped_records_total",
			Help:      "Count of stored records skipped because a time failed to normalize.",
		},
		[]string{"record"},
	)

	bookingEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_operations_total",
			Help:      "Count of booking operations by action and result.",
		},
		[]string{"action", "result"},
	)

	kafkaPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_messages_published_total",
			Help:      "Count of Kafka publish attempts by event type and result.",
		},
		[]string{"event_type", "result"},
	)

	kafkaPublishDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_duration_seconds",
			Help:      "Latency of Kafka publish calls.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(availabilityComputed, skippedRecords, bookingEvents, kafkaPublished, kafkaPublishDuration)
	})
}

func IncAvailability(operation, outcome string) {
	availabilityComputed.WithLabelValues(operation, outcome).Inc()
}

func IncSkippedRecord(record string) {
	skippedRecords.WithLabelValues(record).Inc()
}

func IncBooking(action, result string) {
	bookingEvents.WithLabelValues(action, result).Inc()
}

func IncKafkaPublished(eventType, result string) {
	kafkaPublished.WithLabelValues(eventType, result).Inc()
}

func ObserveKafkaPublish(seconds float64) {
	kafkaPublishDuration.Observe(seconds)
}
