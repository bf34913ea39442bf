package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smarttodos/internal/ai"
	"smarttodos/internal/service"
)

// AIHandler exposes the analysis core directly, without persisting anything.
// Useful for previewing what the pipeline would suggest before creating a
// task.
type AIHandler struct {
	analysis *service.AnalysisService
	logger   *zap.Logger
}

func NewAIHandler(analysis *service.AnalysisService, logger *zap.Logger) *AIHandler {
	return &AIHandler{analysis: analysis, logger: logger}
}

type analyzeTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// AnalyzeTask handles POST /ai/analyze-task
func (h *AIHandler) AnalyzeTask(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req analyzeTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.analysis.AnalyzeTask(c.Request.Context(), uid, ai.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	}, "api")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type analyzeContextRequest struct {
	Content string `json:"content"`
}

// AnalyzeContext handles POST /ai/analyze-context
func (h *AIHandler) AnalyzeContext(c *gin.Context) {
	if _, ok := userID(c); !ok {
		return
	}

	var req analyzeContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	insight, err := h.analysis.AnalyzeContext(req.Content, "api")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, insight)
}
