package kafka_middleware

import (
	"context"
	"time"

	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/kafka"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/metrics"
)

// MetricsProducerMiddleware records publish counts and latency in Prometheus.
func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		metrics.ObserveKafkaPublish(time.Since(start).Seconds())
		if err != nil {
			metrics.IncKafkaPublished(msg.GetEventType(), "failure")
		} else {
			metrics.IncKafkaPublished(msg.GetEventType(), "success")
		}

		return err
	}
}
