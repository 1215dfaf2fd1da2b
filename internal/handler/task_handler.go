package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskbot/internal/model"
	"taskbot/internal/repository"
)

type TaskHandler struct {
	repo repository.TaskRepositoryInterface
}

func NewTaskHandler(repo repository.TaskRepositoryInterface) *TaskHandler {
	return &TaskHandler{repo: repo}
}

// CreateTaskRequest is the body of POST /createtask. Status and priority
// fall back to their defaults when omitted.
type CreateTaskRequest struct {
	UserID      *int64              `json:"user_id" binding:"required"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	Priority    string              `json:"priority"`
	DueDate     *model.CalendarDate `json:"due_date"`
}

// UpdateTaskRequest is the body of PATCH /updatetask/:task_id. Omitted
// fields leave the stored values untouched; "due_date": null clears the
// due date.
type UpdateTaskRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *string            `json:"status"`
	DueDate     model.OptionalDate `json:"due_date"`
}

// TaskResponse is a task record as returned by the list endpoints.
type TaskResponse struct {
	TaskID      uint                `json:"task_id"`
	UserID      int64               `json:"user_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      model.Status        `json:"status"`
	Priority    model.Priority      `json:"priority"`
	DueDate     *model.CalendarDate `json:"due_date"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func newTaskResponse(t model.Task) TaskResponse {
	resp := TaskResponse{
		TaskID:      t.TaskID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		d := model.DateOf(*t.DueDate)
		resp.DueDate = &d
	}
	return resp
}

func taskIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("task_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /createtask
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !model.ValidTitle(req.Title) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		return
	}

	status := model.DefaultStatus
	if req.Status != "" {
		status = model.Status(req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Please enter 'Open', 'In Progress', or 'Completed'."})
			return
		}
	}

	priority := model.DefaultPriority
	if req.Priority != "" {
		priority = model.Priority(req.Priority)
		if !priority.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority. Please enter 'Low', 'Medium', or 'High'."})
			return
		}
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		if err := req.DueDate.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		t := req.DueDate.Time()
		dueDate = &t
	}

	task := &model.Task{
		UserID:      *req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
	}

	if err := h.repo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task created successfully",
		"task_id": task.TaskID,
	})
}

// Update handles PATCH /updatetask/:task_id
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	upd := model.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}

	if req.Title != nil && !model.ValidTitle(*req.Title) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
		return
	}

	if req.Status != nil {
		status := model.Status(*req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Please enter 'Open', 'In Progress', or 'Completed'."})
			return
		}
		upd.Status = &status
	}

	if req.DueDate.Set && req.DueDate.Value != nil {
		if err := req.DueDate.Value.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.repo.Update(c.Request.Context(), taskID, upd); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

// UpdateStatus handles PATCH /updatetaskstatus/:task_id. The new status is
// carried in the "status" query parameter, with a JSON body fallback.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	statusStr := c.Query("status")
	if statusStr == "" {
		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			statusStr = req.Status
		}
	}

	status := model.Status(statusStr)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Please enter 'Open', 'In Progress', or 'Completed'."})
		return
	}

	if err := h.repo.Update(c.Request.Context(), taskID, model.TaskUpdate{Status: &status}); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task status updated successfully"})
}

// Delete handles DELETE /deletetask/:task_id
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// GetAll handles GET /gettasks. The route is guarded by the admin token
// middleware; every owner's tasks are returned.
func (h *TaskHandler) GetAll(c *gin.Context) {
	tasks, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}
	c.JSON(http.StatusOK, response)
}

// GetByUser handles GET /gettasks/:user_id
func (h *TaskHandler) GetByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID format"})
		return
	}

	tasks, err := h.repo.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	response := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}
	c.JSON(http.StatusOK, response)
}
