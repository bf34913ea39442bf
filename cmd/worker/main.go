package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	contracts "smarttodos/contracts/mq"
	"smarttodos/internal/ai"
	"smarttodos/internal/config"
	"smarttodos/internal/mqhandler"
	"smarttodos/internal/repository"
	"smarttodos/internal/service"
	"smarttodos/internal/util"
	"smarttodos/pkg/db"
	"smarttodos/pkg/logger"
	"smarttodos/pkg/mq"
	"smarttodos/pkg/outbox"
	redisclient "smarttodos/pkg/redis"
)

const rollupInterval = time.Hour

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting smarttodos worker...")

	// Redis
	rdb := redisclient.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	deduper := util.NewDeduper(rdb, time.Hour, log)

	// DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB connection failed", zap.Error(err))
	}
	defer dbConn.Close()

	// MQ publisher, used for DLQ parking
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init MQ publisher", zap.Error(err))
	}
	defer publisher.Close()

	if err := publisher.SetupDLQ(contracts.RoutingKeyTaskCreated, contracts.RoutingKeyContextCreated); err != nil {
		log.Fatal("Failed to set up DLQ", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbConn)
	taskRepo := repository.NewTaskRepository(dbConn, log)
	categoryRepo := repository.NewCategoryRepository(dbConn, log)
	contextRepo := repository.NewContextRepository(dbConn, log)
	insightRepo := repository.NewInsightRepository(dbConn, log)
	metricsRepo := repository.NewMetricsRepository(dbConn, log)
	outboxRepo := outbox.NewRepository(dbConn)

	// Services
	analyzer := ai.NewAnalyzer(ai.DefaultLexicon())
	analysisService := service.NewAnalysisService(analyzer, contextRepo, rdb, cfg.AI.ContextLimit, log)
	taskService := service.NewTaskService(taskRepo, categoryRepo, analysisService, publisher, outboxRepo, cfg.AI.OverrideConfidence, log)
	contextService := service.NewContextService(contextRepo, insightRepo, analysisService, publisher, outboxRepo, log)
	metricsService := service.NewMetricsService(userRepo, taskRepo, metricsRepo, insightRepo, log)

	// Handlers
	taskHandler := mqhandler.NewTaskCreatedHandler(taskService, deduper, publisher, log)
	contextHandler := mqhandler.NewContextCreatedHandler(contextService, deduper, publisher, log)

	// -------------------------
	// Task Analysis Consumer
	// -------------------------
	log.Info("Init consumer: " + mqhandler.QueueTaskAnalysis)
	taskConsumer, err := mq.NewConsumer(
		cfg.MQ.URL,
		mqhandler.QueueTaskAnalysis,
		contracts.RoutingKeyTaskCreated,
		log,
	)
	if err != nil {
		log.Fatal("Task consumer init failed", zap.Error(err))
	}
	taskConsumer.SetHandler(taskHandler.Handle)
	go func() {
		if err := taskConsumer.StartConsuming(); err != nil {
			log.Fatal("Task consumer crashed", zap.Error(err))
		}
	}()
	defer taskConsumer.Stop()

	// -------------------------
	// Context Analysis Consumer
	// -------------------------
	log.Info("Init consumer: " + mqhandler.QueueContextAnalysis)
	contextConsumer, err := mq.NewConsumer(
		cfg.MQ.URL,
		mqhandler.QueueContextAnalysis,
		contracts.RoutingKeyContextCreated,
		log,
	)
	if err != nil {
		log.Fatal("Context consumer init failed", zap.Error(err))
	}
	contextConsumer.SetHandler(contextHandler.Handle)
	go func() {
		if err := contextConsumer.StartConsuming(); err != nil {
			log.Fatal("Context consumer crashed", zap.Error(err))
		}
	}()
	defer contextConsumer.Stop()

	// -------------------------
	// Outbox Dispatcher
	// -------------------------
	dispatcherCtx, dispatcherCancel := context.WithCancel(context.Background())
	defer dispatcherCancel()

	dispatcher := outbox.NewDispatcher(outboxRepo, publisher, log)
	go dispatcher.Start(dispatcherCtx)

	// -------------------------
	// Productivity Rollup Ticker
	// -------------------------
	rollupCtx, rollupCancel := context.WithCancel(context.Background())
	defer rollupCancel()

	go func() {
		ticker := time.NewTicker(rollupInterval)
		defer ticker.Stop()

		// Run immediately on startup
		if err := metricsService.RollupDay(rollupCtx, time.Now().UTC()); err != nil {
			log.Error("Productivity rollup failed", zap.Error(err))
		}

		for {
			select {
			case <-rollupCtx.Done():
				log.Info("Productivity rollup stopped")
				return
			case <-ticker.C:
				if err := metricsService.RollupDay(rollupCtx, time.Now().UTC()); err != nil {
					log.Error("Productivity rollup failed", zap.Error(err))
				}
			}
		}
	}()

	log.Info("Worker running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down worker...")
}
