package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDueAtUnmarshal(t *testing.T) {
	t.Run("date only becomes start of day UTC", func(t *testing.T) {
		var req CreateTodoRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"due soon","due_at":"2026-02-19"}`), &req))
		require.NotNil(t, req.DueAt.Ptr())
		require.Equal(t, time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC), req.DueAt.Ptr().UTC())
	})

	t.Run("RFC3339 is accepted", func(t *testing.T) {
		var req CreateTodoRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"due soon","due_at":"2026-02-19T15:04:05Z"}`), &req))
		require.NotNil(t, req.DueAt.Ptr())
		require.Equal(t, 15, req.DueAt.Ptr().UTC().Hour())
	})

	t.Run("null and empty mean no due date", func(t *testing.T) {
		for _, body := range []string{
			`{"title":"open ended","due_at":null}`,
			`{"title":"open ended","due_at":""}`,
			`{"title":"open ended"}`,
		} {
			var req CreateTodoRequest
			require.NoError(t, json.Unmarshal([]byte(body), &req))
			require.Nil(t, req.DueAt.Ptr())
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		var req CreateTodoRequest
		err := json.Unmarshal([]byte(`{"title":"bad date","due_at":"next tuesday"}`), &req)
		require.Error(t, err)
	})
}
