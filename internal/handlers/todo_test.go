package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todoapp/internal/dto"
	"todoapp/internal/repo"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewTodoService(repo.NewMemoryTodoRepo(), nil, zap.NewNop())
	h := NewTodoHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/todos", h.Create)
	api.GET("/todos", h.List)
	api.GET("/todos/stats", h.Stats)
	api.GET("/todos/:id", h.GetByID)
	api.PATCH("/todos/:id", h.Update)
	api.DELETE("/todos/:id", h.Delete)
	api.POST("/todos/:id/toggle", h.Toggle)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTodo(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/todos", `{"title":"Buy milk","priority":"high"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotZero(t, resp.ID)
	require.Equal(t, "Buy milk", resp.Title)
	require.Equal(t, "high", resp.Priority)
	require.False(t, resp.Completed)
}

func TestCreateTodoValidation(t *testing.T) {
	r := newTestRouter()

	// Title too short: rejected by the domain with a stable code.
	w := doJSON(t, r, http.MethodPost, "/api/v1/todos", `{"title":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_todo_title")

	// Unknown priority: rejected by request binding.
	w = doJSON(t, r, http.MethodPost, "/api/v1/todos", `{"title":"valid title","priority":"urgent"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Date-only due_at is accepted.
	w = doJSON(t, r, http.MethodPost, "/api/v1/todos", `{"title":"valid title","due_at":"2030-01-02"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestGetTodoNotFound(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/todos/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "todo_not_found")

	w = doJSON(t, r, http.MethodGet, "/api/v1/todos/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndToggleFlow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/todos", `{"title":"walk the dog"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodPatch, "/api/v1/todos/1", `{"priority":"high"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "high", updated.Priority)
	require.Equal(t, created.Title, updated.Title)

	w = doJSON(t, r, http.MethodPost, "/api/v1/todos/1/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	var toggled dto.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	require.True(t, toggled.Completed)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/todos/99", `{"priority":"low"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTodo(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/todos", `{"title":"delete me"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/todos/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/todos/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAndStats(t *testing.T) {
	r := newTestRouter()

	for _, body := range []string{
		`{"title":"first task","priority":"low"}`,
		`{"title":"second task","priority":"high"}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/todos", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/todos/1/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/todos?filter=active", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list dto.ListTodosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)
	require.Equal(t, "second task", list.Items[0].Title)

	w = doJSON(t, r, http.MethodGet, "/api/v1/todos?filter=bogus", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/todos/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, 2, stats.Total)
	require.Equal(t, 1, stats.Active)
	require.Equal(t, 1, stats.Completed)
	require.Equal(t, 1, stats.HighPriority)
}
