package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smarttodos/internal/service"
)

const defaultListLimit = 20

type ContextHandler struct {
	contextService *service.ContextService
	logger         *zap.Logger
}

func NewContextHandler(contextService *service.ContextService, logger *zap.Logger) *ContextHandler {
	return &ContextHandler{contextService: contextService, logger: logger}
}

type createContextRequest struct {
	Content string `json:"content" binding:"required"`
	Source  string `json:"source" binding:"required"`
}

// Create handles POST /context-entries
func (h *ContextHandler) Create(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req createContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, err := h.contextService.Create(c.Request.Context(), uid, req.Content, req.Source)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// List handles GET /context-entries
func (h *ContextHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := h.contextService.ListRecent(c.Request.Context(), uid, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// Insights handles GET /insights
func (h *ContextHandler) Insights(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	insights, err := h.contextService.ListInsights(c.Request.Context(), uid, defaultListLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
