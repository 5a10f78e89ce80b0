package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-todo-service/internal/model"
)

// TodoRepository scopes every non-admin query by owner_id. A record owned by
// someone else is indistinguishable from a missing one: both come back as
// model.ErrTodoNotFound.
type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, priority, complete, owner_id
		 FROM todos WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

func (r *TodoRepository) FindByIDAndOwner(ctx context.Context, id int64, ownerID int64) (model.Todo, error) {
	var t model.Todo
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, priority, complete, owner_id
		 FROM todos WHERE id = $1 AND owner_id = $2`, id, ownerID).
		Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Complete, &t.OwnerID)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Todo{}, model.ErrTodoNotFound
	}
	if err != nil {
		return model.Todo{}, fmt.Errorf("find todo: %w", err)
	}
	return t, nil
}

func (r *TodoRepository) Create(ctx context.Context, t model.Todo) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO todos (title, description, priority, complete, owner_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		t.Title, t.Description, t.Priority, t.Complete, t.OwnerID).
		Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create todo: %w", err)
	}
	return id, nil
}

func (r *TodoRepository) Update(ctx context.Context, t model.Todo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE todos SET title = $3, description = $4, priority = $5, complete = $6
		 WHERE id = $1 AND owner_id = $2`,
		t.ID, t.OwnerID, t.Title, t.Description, t.Priority, t.Complete)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64, ownerID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

// ListAll returns every todo regardless of owner. Admin use only.
func (r *TodoRepository) ListAll(ctx context.Context) ([]model.Todo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, priority, complete, owner_id
		 FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list all todos: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

// DeleteAny deletes by id alone, bypassing the owner filter. Admin use only.
func (r *TodoRepository) DeleteAny(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTodoNotFound
	}
	return nil
}

func scanTodos(rows pgx.Rows) ([]model.Todo, error) {
	todos := make([]model.Todo, 0)
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Priority, &t.Complete, &t.OwnerID); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}
