package domain

import "time"

// Stats are the aggregate counters derived from the full todo set.
type Stats struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Completed    int `json:"completed"`
	Overdue      int `json:"overdue"`
	HighPriority int `json:"high_priority"`
}

// ComputeStats evaluates the four specifications over one in-memory set,
// avoiding separate storage round-trips per counter.
func ComputeStats(todos []Todo, now time.Time) Stats {
	active := ActiveSpec{}
	completed := CompletedSpec{}
	overdue := OverdueSpec{Reference: now}
	high := HighPrioritySpec{}

	s := Stats{Total: len(todos)}
	for _, t := range todos {
		if active.IsSatisfiedBy(t) {
			s.Active++
		}
		if completed.IsSatisfiedBy(t) {
			s.Completed++
		}
		if overdue.IsSatisfiedBy(t) {
			s.Overdue++
		}
		if high.IsSatisfiedBy(t) {
			s.HighPriority++
		}
	}
	return s
}
