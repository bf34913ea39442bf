package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smarttodos/internal/service"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	logger          *zap.Logger
}

func NewScheduleHandler(scheduleService *service.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, logger: logger}
}

// Get handles GET /schedule?date=YYYY-MM-DD, returning the stored plan.
func (h *ScheduleHandler) Get(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	date, err := parseDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	blocks, err := h.scheduleService.GetDay(c.Request.Context(), uid, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// Plan handles POST /schedule/plan?date=YYYY-MM-DD, rebuilding the day's
// schedule from open tasks due that day.
func (h *ScheduleHandler) Plan(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	date, err := parseDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	blocks, err := h.scheduleService.PlanDay(c.Request.Context(), uid, date)
	if err != nil {
		h.logger.Error("Failed to build day plan",
			zap.Int("user_id", uid),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}
