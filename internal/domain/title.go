package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	titleMinLen = 2
	titleMaxLen = 255
)

// Title is the validated todo title. The zero value is invalid; build one
// with NewTitle.
type Title string

// NewTitle trims the input and validates length bounds.
func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalidTitle("title must not be empty")
	}
	if n := utf8.RuneCountInString(s); n < titleMinLen {
		return "", invalidTitle("title must be at least %d characters", titleMinLen)
	} else if n > titleMaxLen {
		return "", invalidTitle("title must be at most %d characters", titleMaxLen)
	}
	return Title(s), nil
}

func (t Title) String() string { return string(t) }
