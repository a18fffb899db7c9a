package repo

import (
	"context"
	"fmt"
	"time"

	dom "todoapp/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo is the storage contract every adapter must satisfy. Results of
// GetAll, GetActive, GetCompleted and FindBySpecification are ordered by
// creation time, newest first.
type TodoRepo interface {
	GetAll(ctx context.Context) ([]dom.Todo, error)
	// GetByID reports absence through the found flag, never as an error.
	GetByID(ctx context.Context, id dom.ID) (dom.Todo, bool, error)
	// Create assigns a fresh unique id (the incoming todo's id is ignored)
	// and returns it.
	Create(ctx context.Context, t dom.Todo) (dom.ID, error)
	// Update applies only the non-nil patch fields. An all-nil patch is a
	// successful no-op. Returns domain.ErrNotFound for a missing id.
	Update(ctx context.Context, id dom.ID, patch TodoPatch) error
	// Delete returns domain.ErrNotFound for a missing id.
	Delete(ctx context.Context, id dom.ID) error
	GetActive(ctx context.Context) ([]dom.Todo, error)
	GetCompleted(ctx context.Context) ([]dom.Todo, error)
	// FindBySpecification retains todos matching spec. Adapters may push
	// equivalent native filters as long as result set and order match.
	FindBySpecification(ctx context.Context, spec dom.Specification) ([]dom.Todo, error)
}

// TodoPatch is a partial update; nil fields are left unchanged.
type TodoPatch struct {
	Title     *dom.Title
	Completed *bool
	Priority  *dom.Priority
	DueAt     *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil && p.Priority == nil && p.DueAt == nil
}

// Store driver names accepted by New.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// New selects the adapter by driver name. The pool may be nil for the
// memory driver.
func New(driver string, db *pgxpool.Pool) (TodoRepo, error) {
	switch driver {
	case DriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres driver requires a connection pool")
		}
		return NewPGTodoRepo(db), nil
	case DriverMemory:
		return NewMemoryTodoRepo(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
