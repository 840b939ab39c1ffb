package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/careerdesk/core/internal/config"
	"github.com/careerdesk/core/pkg/database"
	"github.com/careerdesk/core/pkg/logger"
	"github.com/careerdesk/core/pkg/repository"
	"github.com/careerdesk/core/pkg/tasks"
)

func main() {
	// Parse command line flags
	var (
		taskName = flag.String("task", "", "Run specific task once (usage_snapshot, store_health)")
		once     = flag.Bool("once", false, "Run task once and exit")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger.SetupLogger()
	log := logger.New("cron-service")

	cfg := config.Load()

	// Connect to the store
	connectCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	client, err := database.Connect(connectCtx, cfg.Database.URI, nil)
	cancel()
	if err != nil {
		log.Fatal().
			Err(err).
			Str("action", "store_connect_failed").
			Msg("Failed to connect to store")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(cfg.Database.Name)
	breaker := database.NewBreaker("mongodb", log)

	jobRepo := repository.NewJobRepository(db, breaker)
	userRepo := repository.NewUserRepository(db, breaker)
	counterRepo := repository.NewCounterRepository(db, breaker)

	// Create task manager
	taskManager := tasks.NewTaskManager(log)

	// Register tasks
	snapshotTask := tasks.NewUsageSnapshotTask(jobRepo, userRepo, counterRepo, log)
	if err := taskManager.RegisterTask(snapshotTask); err != nil {
		log.Fatal().Err(err).Msg("Failed to register usage snapshot task")
	}

	healthTask := tasks.NewStoreHealthTask(client, log)
	if err := taskManager.RegisterTask(healthTask); err != nil {
		log.Fatal().Err(err).Msg("Failed to register store health task")
	}

	// Handle single task execution
	if *once && *taskName != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		var task tasks.Task
		switch *taskName {
		case snapshotTask.Name():
			task = snapshotTask
		case healthTask.Name():
			task = healthTask
		default:
			log.Fatalf("Unknown task: %s. Available tasks: usage_snapshot, store_health", *taskName)
		}

		taskLog := log.WithTask(task.Name())
		taskLog.Info().Str("action", "task_run_once").Msg("Running task once")
		if err := task.Execute(ctx); err != nil {
			taskLog.Fatal().Err(err).Msg("Task execution failed")
		}
		taskLog.Info().Str("action", "task_run_once_done").Msg("Task completed")
		return
	}

	// Start task manager
	taskManager.Start()
	log.Info().
		Str("action", "cron_started").
		Int("task_count", len(taskManager.GetTasks())).
		Msg("Cron task service started")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	taskManager.Stop()
	log.Info().
		Str("action", "cron_stopped").
		Msg("Cron task service stopped")
}
