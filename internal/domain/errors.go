package domain

import "fmt"

// Error is a domain-level failure with a stable machine-readable code
// and the HTTP status the transport layer should map it to.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches by code so errors.Is(err, ErrNotFound) works for
// instances created via the constructor helpers below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidTitle    = &Error{Code: "invalid_todo_title", Status: 400, Message: "invalid todo title"}
	ErrInvalidPriority = &Error{Code: "invalid_todo_priority", Status: 400, Message: "invalid todo priority"}
	ErrInvalidID       = &Error{Code: "invalid_todo_id", Status: 400, Message: "invalid todo id"}
	ErrNotFound        = &Error{Code: "todo_not_found", Status: 404, Message: "todo not found"}
	ErrInvalidDueDate  = &Error{Code: "invalid_due_date", Status: 400, Message: "due date is in the past"}
)

func invalidTitle(format string, args ...any) *Error {
	return &Error{Code: ErrInvalidTitle.Code, Status: 400, Message: fmt.Sprintf(format, args...)}
}

func invalidPriority(format string, args ...any) *Error {
	return &Error{Code: ErrInvalidPriority.Code, Status: 400, Message: fmt.Sprintf(format, args...)}
}

func invalidID(format string, args ...any) *Error {
	return &Error{Code: ErrInvalidID.Code, Status: 400, Message: fmt.Sprintf(format, args...)}
}
