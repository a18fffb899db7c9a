package service

import (
	"context"
	"strings"
	"time"

	"todoapp/internal/cache"
	dom "todoapp/internal/domain"
	"todoapp/internal/repo"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Filter and sort values accepted by ListTodosQuery.
const (
	FilterAll       = "all"
	FilterActive    = "active"
	FilterCompleted = "completed"

	SortByPriority  = "priority"
	SortByCreatedAt = "createdAt"
	SortByUrgency   = "urgency"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// CreateTodoCommand creates a new todo.
type CreateTodoCommand struct {
	Title    string
	Priority string
	DueAt    *time.Time
}

// UpdateTodoCommand patches an existing todo; nil fields are left unchanged.
type UpdateTodoCommand struct {
	ID        dom.ID
	Title     *string
	Completed *bool
	Priority  *string
	DueAt     *time.Time
}

// ListTodosQuery selects a filtered, sorted view of the todo set.
type ListTodosQuery struct {
	Filter    string
	SortBy    string
	SortOrder string
}

// TodoService orchestrates the use cases against the repository contract.
// It never catches and suppresses: every failure surfaces as a typed
// *domain.Error or the untouched storage fault.
type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	log   *zap.Logger
	sf    singleflight.Group
	now   func() time.Time
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache, log *zap.Logger) *TodoService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TodoService{repo: r, cache: c, log: log, now: time.Now}
}

// Create validates the input through the value objects, persists a fresh
// aggregate and returns it hydrated with the assigned id.
func (s *TodoService) Create(ctx context.Context, cmd CreateTodoCommand) (dom.Todo, error) {
	title, err := dom.NewTitle(cmd.Title)
	if err != nil {
		return dom.Todo{}, err
	}
	priority, err := dom.NewPriority(cmd.Priority)
	if err != nil {
		return dom.Todo{}, err
	}
	now := s.now().UTC()
	if cmd.DueAt != nil && cmd.DueAt.Before(now) {
		return dom.Todo{}, dom.ErrInvalidDueDate
	}

	t := dom.NewTodo(title, priority, cmd.DueAt, now)
	if err := t.Validate(); err != nil {
		return dom.Todo{}, err
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return dom.Todo{}, err
	}
	t.ID = id
	s.publish(dom.NewCreatedEvent(id, now))
	s.invalidateCache(ctx)
	return t, nil
}

// GetByID returns a single todo or domain.ErrNotFound.
func (s *TodoService) GetByID(ctx context.Context, id dom.ID) (dom.Todo, error) {
	t, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Todo{}, err
	}
	if !found {
		return dom.Todo{}, dom.ErrNotFound
	}
	return t, nil
}

// Update applies only the fields present in the command.
func (s *TodoService) Update(ctx context.Context, cmd UpdateTodoCommand) (dom.Todo, error) {
	t, err := s.GetByID(ctx, cmd.ID)
	if err != nil {
		return dom.Todo{}, err
	}

	now := s.now().UTC()
	var patch repo.TodoPatch
	var events []dom.Event

	if cmd.Title != nil {
		title, err := dom.NewTitle(*cmd.Title)
		if err != nil {
			return dom.Todo{}, err
		}
		var ev dom.Event
		t, ev = t.UpdateTitle(title, now)
		events = append(events, ev)
		patch.Title = &title
	}
	if cmd.Priority != nil {
		priority, err := dom.NewPriority(*cmd.Priority)
		if err != nil {
			return dom.Todo{}, err
		}
		var ev dom.Event
		t, ev = t.UpdatePriority(priority, now)
		events = append(events, ev)
		patch.Priority = &priority
	}
	if cmd.DueAt != nil {
		if cmd.DueAt.Before(now) {
			return dom.Todo{}, dom.ErrInvalidDueDate
		}
		var ev dom.Event
		t, ev = t.UpdateDueDate(cmd.DueAt, now)
		events = append(events, ev)
		patch.DueAt = cmd.DueAt
	}
	if cmd.Completed != nil && *cmd.Completed != t.Completed {
		var ev dom.Event
		t, ev = t.Toggle(now)
		events = append(events, ev)
		patch.Completed = cmd.Completed
	}

	if err := t.Validate(); err != nil {
		return dom.Todo{}, err
	}
	if err := s.repo.Update(ctx, cmd.ID, patch); err != nil {
		return dom.Todo{}, err
	}
	s.publish(events...)
	s.invalidateCache(ctx)
	return t, nil
}

// Toggle flips the completion flag on the aggregate and persists it.
func (s *TodoService) Toggle(ctx context.Context, id dom.ID) (dom.Todo, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return dom.Todo{}, err
	}
	toggled, ev := t.Toggle(s.now())
	if err := toggled.Validate(); err != nil {
		return dom.Todo{}, err
	}
	if err := s.repo.Update(ctx, id, repo.TodoPatch{Completed: &toggled.Completed}); err != nil {
		return dom.Todo{}, err
	}
	s.publish(ev)
	s.invalidateCache(ctx)
	return toggled, nil
}

// Delete removes a todo permanently.
func (s *TodoService) Delete(ctx context.Context, id dom.ID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// ListFiltered returns the todo set for a filter, ordered by the requested
// sort. Results are cached per filter/sort variant.
func (s *TodoService) ListFiltered(ctx context.Context, q ListTodosQuery) ([]dom.Todo, error) {
	q = normalizeQuery(q)
	if s.cache == nil {
		return s.listFiltered(ctx, q)
	}
	variant := q.Filter + ":" + q.SortBy + ":" + q.SortOrder
	v, err, _ := s.sf.Do("list:"+variant, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, variant); err == nil && list != nil {
			return list, nil
		}
		list, err := s.listFiltered(ctx, q)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, variant, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Todo), nil
}

func (s *TodoService) listFiltered(ctx context.Context, q ListTodosQuery) ([]dom.Todo, error) {
	var (
		list []dom.Todo
		err  error
	)
	switch q.Filter {
	case FilterActive:
		list, err = s.repo.FindBySpecification(ctx, dom.ActiveSpec{})
	case FilterCompleted:
		list, err = s.repo.FindBySpecification(ctx, dom.CompletedSpec{})
	default:
		list, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	switch q.SortBy {
	case SortByPriority, SortByUrgency:
		// Descending urgency by default, completed items last.
		list = dom.SortByPriority(list, s.now())
		if q.SortOrder == SortAsc {
			reverse(list)
		}
	default:
		// Repository order is createdAt descending.
		if q.SortOrder == SortAsc {
			reverse(list)
		}
	}
	return list, nil
}

// Stats derives the counters from one load of the full set.
func (s *TodoService) Stats(ctx context.Context) (dom.Stats, error) {
	if s.cache == nil {
		return s.stats(ctx)
	}
	v, err, _ := s.sf.Do("stats", func() (interface{}, error) {
		if cached, err := s.cache.GetStats(ctx); err == nil && cached != nil {
			return *cached, nil
		}
		st, err := s.stats(ctx)
		if err != nil {
			return dom.Stats{}, err
		}
		_ = s.cache.SetStats(ctx, st)
		return st, nil
	})
	if err != nil {
		return dom.Stats{}, err
	}
	return v.(dom.Stats), nil
}

func (s *TodoService) stats(ctx context.Context) (dom.Stats, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return dom.Stats{}, err
	}
	return dom.ComputeStats(all, s.now()), nil
}

// publish drains domain events after persistence has succeeded. There is
// no broker here; events go to the structured log.
func (s *TodoService) publish(events ...dom.Event) {
	for _, ev := range events {
		s.log.Info("domain event",
			zap.String("event", ev.Name),
			zap.Int64("todo_id", ev.TodoID.Int64()),
			zap.Time("occurred_at", ev.OccurredAt),
		)
	}
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}

func normalizeQuery(q ListTodosQuery) ListTodosQuery {
	q.Filter = strings.TrimSpace(q.Filter)
	if q.Filter == "" {
		q.Filter = FilterAll
	}
	if q.SortBy == "" {
		q.SortBy = SortByCreatedAt
	}
	if q.SortOrder == "" {
		q.SortOrder = SortDesc
	}
	return q
}

func reverse(list []dom.Todo) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}
