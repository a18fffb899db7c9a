package domain

// Priority is the todo priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// NewPriority validates a priority level. Empty input defaults to medium.
func NewPriority(s string) (Priority, error) {
	switch Priority(s) {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	default:
		return "", invalidPriority("priority must be low, medium or high, got %q", s)
	}
}

// Weight returns the numeric ordering value: low=1, medium=2, high=3.
// Unrecognized levels (hydrated from storage) count as medium.
func (p Priority) Weight() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityHigh:
		return 3
	default:
		return 2
	}
}

// HigherThan reports whether p outranks other.
func (p Priority) HigherThan(other Priority) bool {
	return p.Weight() > other.Weight()
}

func (p Priority) String() string { return string(p) }
