package main

import (
	availabilityhandler "github.com/TPetrica/elite-transportation-backend-sub000/internal/availability/handler"
	availabilityservice "github.com/TPetrica/elite-transportation-backend-sub000/internal/availability/service"
	bookinghandler "github.com/TPetrica/elite-transportation-backend-sub000/internal/bookings/handler"
	bookingrepository "github.com/TPetrica/elite-transportation-backend-sub000/internal/bookings/repository"
	bookingservice "github.com/TPetrica/elite-transportation-backend-sub000/internal/bookings/service"
	bookingvalidator "github.com/TPetrica/elite-transportation-backend-sub000/internal/bookings/validator"
	exceptionhandler "github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/handler"
	exceptionrepository "github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/repository"
	exceptionservice "github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/service"
	exceptionvalidator "github.com/TPetrica/elite-transportation-backend-sub000/internal/exceptions/validator"
	manualhandler "github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/handler"
	manualrepository "github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/repository"
	manualservice "github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/service"
	manualvalidator "github.com/TPetrica/elite-transportation-backend-sub000/internal/manualbookings/validator"
	schedulehandler "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/handler"
	schedulerepository "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/repository"
	scheduleservice "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/service"
	schedulevalidator "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/validator"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/app"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/kafka"
	kafka_config "github.com/TPetrica/elite-transportation-backend-sub000/pkg/kafka/config"
	kafka_middleware "github.com/TPetrica/elite-transportation-backend-sub000/pkg/kafka/middleware"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/lock"
)

const ServiceName = "elite-transportation-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	cfg.SetRedis()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting booking API")

	serverApp := app.NewApplication(cfg)
	publisher := initPublisher(cfg, serverApp)

	scheduleRepo := schedulerepository.NewMongoScheduleRepository(cfg)
	exceptionRepo := exceptionrepository.NewMongoExceptionRepository(cfg)
	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)
	manualRepo := manualrepository.NewMongoManualBookingRepository(cfg)

	availabilityService := availabilityservice.NewAvailabilityService(
		scheduleRepo,
		exceptionRepo,
		bookingRepo,
		manualRepo,
		cfg,
	)
	scheduleService := scheduleservice.NewScheduleService(
		scheduleRepo,
		schedulevalidator.NewScheduleValidator(cfg.Log),
		cfg,
	)
	exceptionService := exceptionservice.NewExceptionService(
		exceptionRepo,
		exceptionvalidator.NewExceptionValidator(cfg.Log),
		cfg,
	)
	bookingService := bookingservice.NewBookingService(
		bookingRepo,
		availabilityService,
		initLocker(cfg),
		publisher,
		bookingvalidator.NewBookingValidator(cfg.Log),
		cfg,
	)
	manualService := manualservice.NewManualBookingService(
		manualRepo,
		manualvalidator.NewManualBookingValidator(cfg.Log),
		cfg,
	)

	serverApp.SetApp(
		availabilityhandler.NewAvailabilityHandler(availabilityService, cfg.Log),
		schedulehandler.NewScheduleHandler(scheduleService, cfg.Log),
		exceptionhandler.NewExceptionHandler(exceptionService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
		manualhandler.NewManualBookingHandler(manualService, cfg.Log),
	)
	serverApp.Run()
}

// initLocker prefers Redis and falls back to the Mongo lock collection.
func initLocker(cfg *config.Config) lock.Locker {
	if cfg.Client.Redis != nil {
		cfg.Log.Info("Booking locks backed by Redis", "addr", cfg.RedisAddr)
		return lock.NewRedisLock(cfg.Client.Redis)
	}
	cfg.Log.Info("Booking locks backed by MongoDB", "collection", lock.LockCollectionName)
	return lock.NewMongoLock(cfg.Client.Mongo.Database(cfg.MongoDatabaseName))
}

// initPublisher returns nil when Kafka is disabled. The returned interface is
// never a typed nil.
func initPublisher(cfg *config.Config, serverApp *app.Application) kafka.Publisher {
	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka disabled, booking events will not be published")
		return nil
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.KafkaBookingTopic, cfg.KafkaBookingDLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	if kafkaCfg.EnableMiddleware {
		producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
		producer.Use(kafka_middleware.MetricsProducerMiddleware())
	}

	serverApp.OnShutdown(func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	})
	return producer
}
