package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "todoapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const todoColumns = "id, title, completed, priority, created_at, due_at"

// PGTodoRepo implements TodoRepo with Postgres.
type PGTodoRepo struct {
	db *pgxpool.Pool
}

// NewPGTodoRepo returns a new PGTodoRepo.
func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) GetAll(ctx context.Context) ([]dom.Todo, error) {
	return r.queryList(ctx, `
		SELECT `+todoColumns+`
		FROM todos ORDER BY created_at DESC, id DESC`)
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id dom.ID) (dom.Todo, bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+todoColumns+`
		FROM todos WHERE id = $1`, id.Int64())
	t, err := scanTodo(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Todo{}, false, nil
	}
	if err != nil {
		return dom.Todo{}, false, err
	}
	return t, true, nil
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.ID, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO todos (title, completed, priority, created_at, due_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		t.Title.String(), t.Completed, t.Priority.String(), t.CreatedAt, t.DueAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return dom.ID(id), nil
}

func (r *PGTodoRepo) Update(ctx context.Context, id dom.ID, patch TodoPatch) error {
	if patch.IsEmpty() {
		// Still verify the row exists so a no-op against a missing id fails.
		_, found, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return dom.ErrNotFound
		}
		return nil
	}

	sets := make([]string, 0, 4)
	args := []any{id.Int64()}
	addSet := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		addSet("title", patch.Title.String())
	}
	if patch.Completed != nil {
		addSet("completed", *patch.Completed)
	}
	if patch.Priority != nil {
		addSet("priority", patch.Priority.String())
	}
	if patch.DueAt != nil {
		addSet("due_at", *patch.DueAt)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE todos SET `+strings.Join(sets, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return dom.ErrNotFound
	}
	return nil
}

func (r *PGTodoRepo) Delete(ctx context.Context, id dom.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id.Int64())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return dom.ErrNotFound
	}
	return nil
}

func (r *PGTodoRepo) GetActive(ctx context.Context) ([]dom.Todo, error) {
	return r.queryList(ctx, `
		SELECT `+todoColumns+`
		FROM todos WHERE completed = FALSE ORDER BY created_at DESC, id DESC`)
}

func (r *PGTodoRepo) GetCompleted(ctx context.Context) ([]dom.Todo, error) {
	return r.queryList(ctx, `
		SELECT `+todoColumns+`
		FROM todos WHERE completed = TRUE ORDER BY created_at DESC, id DESC`)
}

// FindBySpecification pushes the well-known specifications down to native
// WHERE clauses; anything else loads the full set and filters in memory.
func (r *PGTodoRepo) FindBySpecification(ctx context.Context, spec dom.Specification) ([]dom.Todo, error) {
	switch s := spec.(type) {
	case dom.ActiveSpec:
		return r.GetActive(ctx)
	case dom.CompletedSpec:
		return r.GetCompleted(ctx)
	case dom.HighPrioritySpec:
		return r.queryList(ctx, `
			SELECT `+todoColumns+`
			FROM todos WHERE priority = 'high' ORDER BY created_at DESC, id DESC`)
	case dom.OverdueSpec:
		// floor(elapsed/24h) > 7 is equivalent to elapsed >= 8 days.
		return r.queryList(ctx, `
			SELECT `+todoColumns+`
			FROM todos
			WHERE completed = FALSE AND created_at <= $1 - INTERVAL '8 days'
			ORDER BY created_at DESC, id DESC`, s.Reference)
	default:
		all, err := r.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		var out []dom.Todo
		for _, t := range all {
			if spec.IsSatisfiedBy(t) {
				out = append(out, t)
			}
		}
		return out, nil
	}
}

func (r *PGTodoRepo) queryList(ctx context.Context, query string, args ...any) ([]dom.Todo, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTodo(row pgx.Row) (dom.Todo, error) {
	var (
		t        dom.Todo
		id       int64
		title    string
		priority string
	)
	err := row.Scan(&id, &title, &t.Completed, &priority, &t.CreatedAt, &t.DueAt)
	if err != nil {
		return dom.Todo{}, err
	}
	t.ID = dom.ID(id)
	t.Title = dom.Title(title)
	t.Priority = dom.Priority(priority)
	return t, nil
}
