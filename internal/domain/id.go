package domain

import "strconv"

// ID identifies a persisted todo. Zero means not yet persisted.
type ID int64

// NewID validates that v is a positive integer.
func NewID(v int64) (ID, error) {
	if v <= 0 {
		return 0, invalidID("id must be a positive integer, got %d", v)
	}
	return ID(v), nil
}

// ParseID parses a decimal string and re-validates it.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, invalidID("id must be a positive integer, got %q", s)
	}
	return NewID(v)
}

func (id ID) Int64() int64 { return int64(id) }

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }
