package domain

import "time"

// millisPerDay fixes a "day" as a 24h duration from the creation instant,
// with no timezone adjustment.
const millisPerDay = 86_400_000

// overdueAfterDays is the fixed business rule: an incomplete todo is
// overdue once more than this many whole days have elapsed since creation.
const overdueAfterDays = 7

// Specification is a pure predicate over a todo, composable via And/Or/Not.
type Specification interface {
	IsSatisfiedBy(t Todo) bool
}

type andSpec struct{ left, right Specification }

func (s andSpec) IsSatisfiedBy(t Todo) bool {
	return s.left.IsSatisfiedBy(t) && s.right.IsSatisfiedBy(t)
}

type orSpec struct{ left, right Specification }

func (s orSpec) IsSatisfiedBy(t Todo) bool {
	return s.left.IsSatisfiedBy(t) || s.right.IsSatisfiedBy(t)
}

type notSpec struct{ inner Specification }

func (s notSpec) IsSatisfiedBy(t Todo) bool {
	return !s.inner.IsSatisfiedBy(t)
}

// And combines two specifications; evaluation short-circuits left to right.
func And(left, right Specification) Specification { return andSpec{left, right} }

// Or combines two specifications; evaluation short-circuits left to right.
func Or(left, right Specification) Specification { return orSpec{left, right} }

// Not negates a specification.
func Not(inner Specification) Specification { return notSpec{inner} }

// ActiveSpec matches incomplete todos.
type ActiveSpec struct{}

func (ActiveSpec) IsSatisfiedBy(t Todo) bool { return !t.Completed }

// CompletedSpec matches completed todos.
type CompletedSpec struct{}

func (CompletedSpec) IsSatisfiedBy(t Todo) bool { return t.Completed }

// OverdueSpec matches incomplete todos older than the overdue threshold,
// measured against the reference instant captured at construction.
type OverdueSpec struct {
	Reference time.Time
}

// NewOverdueSpec captures now as the reference instant.
func NewOverdueSpec() OverdueSpec { return OverdueSpec{Reference: time.Now()} }

func (s OverdueSpec) IsSatisfiedBy(t Todo) bool {
	if t.Completed {
		return false
	}
	days := s.Reference.Sub(t.CreatedAt).Milliseconds() / millisPerDay
	return days > overdueAfterDays
}

// HighPrioritySpec matches todos with high priority.
type HighPrioritySpec struct{}

func (HighPrioritySpec) IsSatisfiedBy(t Todo) bool { return t.Priority == PriorityHigh }
