package domain

import "time"

// Event names emitted by aggregate mutations.
const (
	EventCreated         = "todo.created"
	EventCompleted       = "todo.completed"
	EventReopened        = "todo.reopened"
	EventTitleChanged    = "todo.title_changed"
	EventPriorityChanged = "todo.priority_changed"
	EventDueDateChanged  = "todo.due_date_changed"
)

// Event records something that happened to a todo. Mutations return events
// alongside the new instance; the caller drains them after persistence
// succeeds.
type Event struct {
	Name       string    `json:"name"`
	TodoID     ID        `json:"todo_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEvent(name string, id ID, now time.Time) Event {
	return Event{Name: name, TodoID: id, OccurredAt: now.UTC()}
}

// NewCreatedEvent is emitted by the create use case once the repository
// has assigned an id.
func NewCreatedEvent(id ID, now time.Time) Event {
	return newEvent(EventCreated, id, now)
}
