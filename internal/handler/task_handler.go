package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smarttodos/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *zap.Logger
}

func NewTaskHandler(taskService *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, logger: logger}
}

type createTaskRequest struct {
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	Category          string     `json:"category"`
	Priority          string     `json:"priority"`
	Deadline          *time.Time `json:"deadline"`
	EstimatedDuration int        `json:"estimated_duration"`
}

// Create handles POST /tasks
func (h *TaskHandler) Create(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.taskService.Create(c.Request.Context(), uid, service.CreateTaskInput{
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Priority:          req.Priority,
		Deadline:          req.Deadline,
		EstimatedDuration: req.EstimatedDuration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// List handles GET /tasks
func (h *TaskHandler) List(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Get handles GET /tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	t, err := h.taskService.Get(c.Request.Context(), taskID, uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type updateTaskRequest struct {
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	Deadline          *time.Time `json:"deadline"`
	EstimatedDuration int        `json:"estimated_duration"`
}

// Update handles PATCH /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	t, err := h.taskService.Get(c.Request.Context(), taskID, uid)
	if err != nil {
		respondError(c, err)
		return
	}

	t.Title = req.Title
	t.Description = req.Description
	if req.Priority != "" {
		t.Priority = req.Priority
	}
	if req.Status != "" {
		t.Status = req.Status
	}
	t.Deadline = req.Deadline
	if req.EstimatedDuration > 0 {
		t.EstimatedDuration = req.EstimatedDuration
	}

	if err := h.taskService.Update(c.Request.Context(), uid, t); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Complete handles POST /tasks/:id/complete
func (h *TaskHandler) Complete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if err := h.taskService.Complete(c.Request.Context(), taskID, uid); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "completed"})
}

// Delete handles DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), taskID, uid); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Analyze handles POST /tasks/:id/analyze, a synchronous re-analysis of a
// stored task.
func (h *TaskHandler) Analyze(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	// Ownership check before analyzing.
	if _, err := h.taskService.Get(c.Request.Context(), taskID, uid); err != nil {
		respondError(c, err)
		return
	}

	t, err := h.taskService.Analyze(c.Request.Context(), taskID, "api")
	if err != nil {
		h.logger.Error("On-demand task analysis failed",
			zap.Int("task_id", taskID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
