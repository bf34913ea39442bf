package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"smarttodos/internal/handler"
	pkgmq "smarttodos/pkg/mq"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	contextHandler *handler.ContextHandler,
	aiHandler *handler.AIHandler,
	scheduleHandler *handler.ScheduleHandler,
	jwtSecret string,
	db *pgxpool.Pool,
	publisher *pkgmq.Publisher,
	logger *zap.Logger,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(TraceMiddleware())
	r.Use(LoggingMiddleware(logger))
	r.Use(MetricsMiddleware())

	// Operational endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		if !publisher.IsConnected() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "mq unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.POST("/tasks", taskHandler.Create)
		auth.GET("/tasks", taskHandler.List)
		auth.GET("/tasks/:id", taskHandler.Get)
		auth.PATCH("/tasks/:id", taskHandler.Update)
		auth.DELETE("/tasks/:id", taskHandler.Delete)
		auth.POST("/tasks/:id/complete", taskHandler.Complete)
		auth.POST("/tasks/:id/analyze", taskHandler.Analyze)

		auth.POST("/context-entries", contextHandler.Create)
		auth.GET("/context-entries", contextHandler.List)
		auth.GET("/insights", contextHandler.Insights)

		auth.POST("/ai/analyze-task", aiHandler.AnalyzeTask)
		auth.POST("/ai/analyze-context", aiHandler.AnalyzeContext)

		auth.GET("/schedule", scheduleHandler.Get)
		auth.POST("/schedule/plan", scheduleHandler.Plan)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
