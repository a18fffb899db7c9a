package domain

import (
	"sort"
	"time"
)

// Collection-level rules that do not belong on a single todo instance.

// urgencyAgeCapWeeks caps the age multiplier at three weeks-equivalent so
// very old items do not grow unboundedly urgent.
const (
	urgencyAgeCapWeeks = 3.0
	daysPerWeek        = 7
)

// IsOverdue applies the overdue rule outside specification composition.
func IsOverdue(t Todo, now time.Time) bool {
	return OverdueSpec{Reference: now}.IsSatisfiedBy(t)
}

// UrgencyScore ranks incomplete todos: priority weight dominates, age adds
// up to a 4x multiplier. Completed todos score zero.
func UrgencyScore(t Todo, now time.Time) float64 {
	if t.Completed {
		return 0
	}
	weeks := now.Sub(t.CreatedAt).Hours() / 24 / daysPerWeek
	if weeks > urgencyAgeCapWeeks {
		weeks = urgencyAgeCapWeeks
	}
	if weeks < 0 {
		weeks = 0
	}
	return float64(t.Priority.Weight()) * (1 + weeks)
}

// CompletionCheck is the outcome of CanComplete.
type CompletionCheck struct {
	CanComplete bool
	Reason      string
}

// CanComplete reports whether completing the todo is a valid transition.
func CanComplete(t Todo) CompletionCheck {
	if t.Completed {
		return CompletionCheck{Reason: "todo is already completed"}
	}
	return CompletionCheck{CanComplete: true}
}

// SortByPriority returns a sorted copy: incomplete todos before completed
// ones, each group ordered by descending urgency. The input is not mutated.
func SortByPriority(todos []Todo, now time.Time) []Todo {
	out := make([]Todo, len(todos))
	copy(out, todos)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return UrgencyScore(out[i], now) > UrgencyScore(out[j], now)
	})
	return out
}
