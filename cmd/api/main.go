package main

import (
	"time"

	"go.uber.org/zap"

	"smarttodos/internal/ai"
	"smarttodos/internal/config"
	"smarttodos/internal/handler"
	"smarttodos/internal/httpserver"
	"smarttodos/internal/repository"
	"smarttodos/internal/service"
	"smarttodos/pkg/db"
	"smarttodos/pkg/logger"
	"smarttodos/pkg/mq"
	"smarttodos/pkg/outbox"
	redisclient "smarttodos/pkg/redis"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting smarttodos API...",
		zap.String("db_host", cfg.DB.Host),
		zap.String("server_port", cfg.Server.Port),
	)

	// DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	// Redis
	rdb := redisclient.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	// MQ Publisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		log.Fatal("Failed to init MQ publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Repositories
	userRepo := repository.NewUserRepository(dbConn)
	taskRepo := repository.NewTaskRepository(dbConn, log)
	categoryRepo := repository.NewCategoryRepository(dbConn, log)
	contextRepo := repository.NewContextRepository(dbConn, log)
	insightRepo := repository.NewInsightRepository(dbConn, log)
	blockRepo := repository.NewTimeBlockRepository(dbConn, log)
	outboxRepo := outbox.NewRepository(dbConn)

	// Services
	analyzer := ai.NewAnalyzer(ai.DefaultLexicon())
	analysisService := service.NewAnalysisService(analyzer, contextRepo, rdb, cfg.AI.ContextLimit, log)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	taskService := service.NewTaskService(taskRepo, categoryRepo, analysisService, publisher, outboxRepo, cfg.AI.OverrideConfidence, log)
	contextService := service.NewContextService(contextRepo, insightRepo, analysisService, publisher, outboxRepo, log)
	scheduleService := service.NewScheduleService(taskRepo, blockRepo, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, log)
	taskHandler := handler.NewTaskHandler(taskService, log)
	contextHandler := handler.NewContextHandler(contextService, log)
	aiHandler := handler.NewAIHandler(analysisService, log)
	scheduleHandler := handler.NewScheduleHandler(scheduleService, log)

	// Router
	router := httpserver.NewRouter(
		authHandler,
		taskHandler,
		contextHandler,
		aiHandler,
		scheduleHandler,
		cfg.JWT.Secret,
		dbConn,
		publisher,
		log,
	)

	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
