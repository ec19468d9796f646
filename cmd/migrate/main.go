package main

import (
	"context"
	"flag"
	"time"

	mongoMigration "github.com/TPetrica/elite-transportation-backend-sub000/internal/migrations/mongo"
	schedulerepository "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/repository"
	scheduleservice "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/service"
	schedulevalidator "github.com/TPetrica/elite-transportation-backend-sub000/internal/schedules/validator"
	"github.com/TPetrica/elite-transportation-backend-sub000/pkg/config"
)

const JobName = "mongo-migration"

func main() {
	resetSchedules := flag.Bool("reset-schedules", false, "replace every weekday schedule with the 24/7 default")
	timeout := flag.Duration("timeout", 120*time.Second, "overall migration deadline")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Mongo migration job", "reset_schedules", *resetSchedules)

	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db, cfg.Log); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	if *resetSchedules {
		svc := scheduleservice.NewScheduleService(
			schedulerepository.NewMongoScheduleRepository(cfg),
			schedulevalidator.NewScheduleValidator(cfg.Log),
			cfg,
		)
		schedules, err := svc.ResetSchedules(ctx)
		if err != nil {
			cfg.Log.Fatal("Failed to reset weekday schedules", "error", err)
		}
		cfg.Log.Info("Weekday schedules reset", "count", len(schedules))
	}

	cfg.Log.Info("Migration completed successfully")
}
