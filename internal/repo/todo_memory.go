package repo

import (
	"context"
	"sort"
	"sync"

	dom "todoapp/internal/domain"
)

// MemoryTodoRepo implements TodoRepo with a process-local map. It is the
// system of record in memory mode, not a cache; ids are never reused.
type MemoryTodoRepo struct {
	mu     sync.RWMutex
	todos  map[dom.ID]dom.Todo
	nextID int64
}

// NewMemoryTodoRepo returns an empty in-memory store.
func NewMemoryTodoRepo() *MemoryTodoRepo {
	return &MemoryTodoRepo{todos: make(map[dom.ID]dom.Todo)}
}

func (r *MemoryTodoRepo) GetAll(ctx context.Context) ([]dom.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(nil), nil
}

func (r *MemoryTodoRepo) GetByID(ctx context.Context, id dom.ID) (dom.Todo, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.todos[id]
	return t, ok, nil
}

func (r *MemoryTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	t.ID = dom.ID(r.nextID)
	r.todos[t.ID] = t
	return t.ID, nil
}

func (r *MemoryTodoRepo) Update(ctx context.Context, id dom.ID, patch TodoPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return dom.ErrNotFound
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueAt != nil {
		due := *patch.DueAt
		t.DueAt = &due
	}
	r.todos[id] = t
	return nil
}

func (r *MemoryTodoRepo) Delete(ctx context.Context, id dom.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return dom.ErrNotFound
	}
	delete(r.todos, id)
	return nil
}

func (r *MemoryTodoRepo) GetActive(ctx context.Context) ([]dom.Todo, error) {
	return r.FindBySpecification(ctx, dom.ActiveSpec{})
}

func (r *MemoryTodoRepo) GetCompleted(ctx context.Context) ([]dom.Todo, error) {
	return r.FindBySpecification(ctx, dom.CompletedSpec{})
}

func (r *MemoryTodoRepo) FindBySpecification(ctx context.Context, spec dom.Specification) ([]dom.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(spec), nil
}

// snapshot copies matching todos ordered by creation time, newest first.
// Must be called while holding the lock.
func (r *MemoryTodoRepo) snapshot(spec dom.Specification) []dom.Todo {
	var out []dom.Todo
	for _, t := range r.todos {
		if spec == nil || spec.IsSatisfiedBy(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
