package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskbot/internal/handler"
	"taskbot/internal/middleware"
	"taskbot/internal/model"
	"taskbot/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminToken = "test-admin-token"

func newRecorder(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// setupIntegration wires the real repository over in-memory SQLite behind
// the full route table.
func setupIntegration(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Task{}))

	taskHandler := handler.NewTaskHandler(repository.NewTaskRepository(db))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.POST("/createtask", taskHandler.Create)
	r.PATCH("/updatetask/:task_id", taskHandler.Update)
	r.PATCH("/updatetaskstatus/:task_id", taskHandler.UpdateStatus)
	r.DELETE("/deletetask/:task_id", taskHandler.Delete)
	r.GET("/gettasks/:user_id", taskHandler.GetByUser)
	r.GET("/gettasks", middleware.AdminAuthMiddleware(testAdminToken), taskHandler.GetAll)
	return r
}

func TestCreateThenList(t *testing.T) {
	router := setupIntegration(t)

	resp := doJSON(router, "POST", "/createtask", gin.H{"user_id": 1, "title": "Write spec"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, "GET", "/gettasks/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var tasks []handler.TaskResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, int64(1), task.UserID)
	assert.Equal(t, "Write spec", task.Title)
	assert.Equal(t, model.StatusOpen, task.Status)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateEmptyTitle_NothingPersisted(t *testing.T) {
	router := setupIntegration(t)

	resp := doJSON(router, "POST", "/createtask", gin.H{"user_id": 1, "title": "  "})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, "GET", "/gettasks/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestUpdateUnknownTask_StoreUnchanged(t *testing.T) {
	router := setupIntegration(t)

	resp := doJSON(router, "POST", "/createtask", gin.H{"user_id": 1, "title": "keep me"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, "PATCH", "/updatetask/9999", gin.H{"title": "new"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(router, "GET", "/gettasks/1", nil)
	var tasks []handler.TaskResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "keep me", tasks[0].Title)
}

func TestDueDateRoundTrip(t *testing.T) {
	router := setupIntegration(t)

	resp := doJSON(router, "POST", "/createtask", gin.H{
		"user_id":  1,
		"title":    "Holiday prep",
		"due_date": gin.H{"year": 2024, "month": 12, "day": 25},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, "GET", "/gettasks/1", nil)
	var tasks []handler.TaskResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, &model.CalendarDate{Year: 2024, Month: 12, Day: 25}, tasks[0].DueDate)

	// Clearing the date through the update endpoint.
	resp = doJSON(router, "PATCH", "/updatetask/1", map[string]interface{}{"due_date": nil})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, "GET", "/gettasks/1", nil)
	tasks = nil
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].DueDate)
}

func TestStatusLifecycle(t *testing.T) {
	router := setupIntegration(t)

	resp := doJSON(router, "POST", "/createtask", gin.H{"user_id": 1, "title": "Write spec", "description": "full draft"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, "PATCH", "/updatetaskstatus/1?status=In+Progress", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// A bad status leaves the task untouched.
	resp = doJSON(router, "PATCH", "/updatetaskstatus/1?status=Abandoned", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, "GET", "/gettasks/1", nil)
	var tasks []handler.TaskResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, model.StatusInProgress, tasks[0].Status)
	assert.Equal(t, "full draft", tasks[0].Description)
}

func TestDeleteThenOperate(t *testing.T) {
	router := setupIntegration(t)

	resp := doJSON(router, "POST", "/createtask", gin.H{"user_id": 1, "title": "short lived"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, "DELETE", "/deletetask/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, http.StatusNotFound, doJSON(router, "PATCH", "/updatetask/1", gin.H{"title": "x"}).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(router, "DELETE", "/deletetask/1", nil).Code)
}

func TestGetAllTasks_AdminToken(t *testing.T) {
	router := setupIntegration(t)

	doJSON(router, "POST", "/createtask", gin.H{"user_id": 1, "title": "a"})
	doJSON(router, "POST", "/createtask", gin.H{"user_id": 2, "title": "b"})

	// No token.
	resp := doJSON(router, "GET", "/gettasks", nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// Wrong token.
	req, _ := http.NewRequest("GET", "/gettasks", nil)
	req.Header.Set(middleware.AdminTokenHeader, "wrong")
	rec := newRecorder(router, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Correct token sees every owner's tasks.
	req, _ = http.NewRequest("GET", "/gettasks", nil)
	req.Header.Set(middleware.AdminTokenHeader, testAdminToken)
	rec = newRecorder(router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []handler.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 2)
}
