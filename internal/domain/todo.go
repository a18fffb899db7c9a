package domain

import "time"

// Todo is the aggregate root. Instances are values: every mutation returns
// a new validated instance and an Event describing what happened, never an
// in-place change. CreatedAt is set once at construction.
type Todo struct {
	ID        ID         `json:"id"`
	Title     Title      `json:"title"`
	Completed bool       `json:"completed"`
	Priority  Priority   `json:"priority"`
	CreatedAt time.Time  `json:"created_at"`
	DueAt     *time.Time `json:"due_at,omitempty"`
}

// NewTodo builds an unpersisted todo (ID zero, completed false).
func NewTodo(title Title, priority Priority, dueAt *time.Time, now time.Time) Todo {
	return Todo{
		Title:     title,
		Priority:  priority,
		CreatedAt: now.UTC(),
		DueAt:     dueAt,
	}
}

// Equals is identity equality: two todos are the same entity iff their
// persisted IDs match.
func (t Todo) Equals(other Todo) bool {
	return t.ID != 0 && t.ID == other.ID
}

// Toggle flips the completion flag.
func (t Todo) Toggle(now time.Time) (Todo, Event) {
	out := t
	out.Completed = !t.Completed
	name := EventCompleted
	if !out.Completed {
		name = EventReopened
	}
	return out, newEvent(name, out.ID, now)
}

// UpdateTitle returns a copy with a new validated title.
func (t Todo) UpdateTitle(title Title, now time.Time) (Todo, Event) {
	out := t
	out.Title = title
	return out, newEvent(EventTitleChanged, out.ID, now)
}

// UpdatePriority returns a copy with a new priority.
func (t Todo) UpdatePriority(priority Priority, now time.Time) (Todo, Event) {
	out := t
	out.Priority = priority
	return out, newEvent(EventPriorityChanged, out.ID, now)
}

// UpdateDueDate returns a copy with a new due date.
func (t Todo) UpdateDueDate(dueAt *time.Time, now time.Time) (Todo, Event) {
	out := t
	out.DueAt = dueAt
	return out, newEvent(EventDueDateChanged, out.ID, now)
}

// Validate re-runs the value-object invariants. Construction through
// NewTodo cannot violate them, but instances hydrated from storage or
// cache bypass the constructors.
func (t Todo) Validate() error {
	if _, err := NewTitle(t.Title.String()); err != nil {
		return err
	}
	if _, err := NewPriority(t.Priority.String()); err != nil {
		return err
	}
	return nil
}
