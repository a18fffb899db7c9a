package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dom "todoapp/internal/domain"
)

// DueAt parses due_at from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC.
type DueAt struct{ t *time.Time }

func (d *DueAt) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("due_at: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in the service layer.
func (d DueAt) Ptr() *time.Time { return d.t }

type CreateTodoRequest struct {
	Title    string `json:"title" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueAt    DueAt  `json:"due_at"` // optional: "2026-02-19" or RFC3339
}

type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
	Priority  *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueAt     *DueAt  `json:"due_at"` // nil = keep, value = set
}

// ListTodosQuery binds the filter/sort query string.
type ListTodosQuery struct {
	Filter    string `form:"filter" binding:"omitempty,oneof=all active completed"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=priority createdAt urgency"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type TodoResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Priority  string     `json:"priority"`
	CreatedAt time.Time  `json:"created_at"`
	DueAt     *time.Time `json:"due_at"`
}

type ListTodosResponse struct {
	Items []TodoResponse `json:"items"`
}

type StatsResponse struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Completed    int `json:"completed"`
	Overdue      int `json:"overdue"`
	HighPriority int `json:"high_priority"`
}

// FromTodo maps a domain todo to its response shape.
func FromTodo(t dom.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID.Int64(),
		Title:     t.Title.String(),
		Completed: t.Completed,
		Priority:  t.Priority.String(),
		CreatedAt: t.CreatedAt,
		DueAt:     t.DueAt,
	}
}

// FromTodos maps a todo list to its response shape.
func FromTodos(list []dom.Todo) []TodoResponse {
	out := make([]TodoResponse, len(list))
	for i := range list {
		out[i] = FromTodo(list[i])
	}
	return out
}

// FromStats maps domain stats to their response shape.
func FromStats(s dom.Stats) StatsResponse {
	return StatsResponse{
		Total:        s.Total,
		Active:       s.Active,
		Completed:    s.Completed,
		Overdue:      s.Overdue,
		HighPriority: s.HighPriority,
	}
}
