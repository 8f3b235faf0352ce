package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/penpaperdiary/penpaper-api/internal/todo"
)

const todoColumns = "id, created_at, updated_at, user_id, title, category, status, completed_at, due_date, subtasks, version"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (todo.Todo, error) {
	var (
		t           todo.Todo
		completedAt sql.NullTime
		subtasks    []byte
	)
	err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.UserID, &t.Title, &t.Category,
		&t.Status, &completedAt, &t.DueDate, &subtasks, &t.Version)
	if err != nil {
		return todo.Todo{}, err
	}
	if completedAt.Valid {
		at := completedAt.Time
		t.CompletedAt = &at
	}
	if err := json.Unmarshal(subtasks, &t.Subtasks); err != nil {
		return todo.Todo{}, err
	}
	return t, nil
}

type CreateTodoParams struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    string
	Category string
	DueDate  time.Time
}

func (q *Queries) CreateTodo(ctx context.Context, arg CreateTodoParams) (todo.Todo, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO todos (id, created_at, updated_at, user_id, title, category, status, due_date, subtasks, version)
		VALUES ($1, now(), now(), $2, $3, $4, 'pending', $5, '[]', 1)
		RETURNING `+todoColumns,
		arg.ID, arg.UserID, arg.Title, arg.Category, arg.DueDate)
	return scanTodo(row)
}

func (q *Queries) GetTodoByID(ctx context.Context, id uuid.UUID) (todo.Todo, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+todoColumns+" FROM todos WHERE id = $1", id)
	return scanTodo(row)
}

type ListTodosParams struct {
	UserID uuid.UUID
	// Status filters to a single status when non-empty.
	Status string
}

func (q *Queries) ListTodos(ctx context.Context, arg ListTodosParams) ([]todo.Todo, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+todoColumns+` FROM todos
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`,
		arg.UserID, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

type UpdateTodoStatusParams struct {
	ID          uuid.UUID
	Status      string
	CompletedAt *time.Time
}

func (q *Queries) UpdateTodoStatus(ctx context.Context, arg UpdateTodoStatusParams) (todo.Todo, error) {
	var completedAt sql.NullTime
	if arg.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *arg.CompletedAt, Valid: true}
	}
	row := q.db.QueryRowContext(ctx, `
		UPDATE todos
		SET status = $2, completed_at = $3, updated_at = now(), version = version + 1
		WHERE id = $1
		RETURNING `+todoColumns,
		arg.ID, arg.Status, completedAt)
	return scanTodo(row)
}

type UpdateTodoSubtasksParams struct {
	ID       uuid.UUID
	Subtasks []todo.Subtask
	// Version is the aggregate version the caller read before mutating the
	// subtask list; the write only lands if it still matches.
	Version int32
}

func (q *Queries) UpdateTodoSubtasks(ctx context.Context, arg UpdateTodoSubtasksParams) (todo.Todo, error) {
	subtasks, err := json.Marshal(arg.Subtasks)
	if err != nil {
		return todo.Todo{}, err
	}
	row := q.db.QueryRowContext(ctx, `
		UPDATE todos
		SET subtasks = $2, updated_at = now(), version = version + 1
		WHERE id = $1 AND version = $3
		RETURNING `+todoColumns,
		arg.ID, subtasks, arg.Version)
	t, err := scanTodo(row)
	if err == sql.ErrNoRows {
		// distinguish a missing todo from a stale version
		if _, getErr := q.GetTodoByID(ctx, arg.ID); getErr == nil {
			return todo.Todo{}, ErrVersionConflict
		}
		return todo.Todo{}, err
	}
	return t, err
}

func (q *Queries) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	var deleted uuid.UUID
	return q.db.QueryRowContext(ctx,
		"DELETE FROM todos WHERE id = $1 RETURNING id", id).Scan(&deleted)
}

type CountTodosParams struct {
	UserID uuid.UUID
	Status string
}

func (q *Queries) CountTodosByStatus(ctx context.Context, arg CountTodosParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		"SELECT count(*) FROM todos WHERE user_id = $1 AND status = $2",
		arg.UserID, arg.Status).Scan(&count)
	return count, err
}

type ListTodosCompletedBetweenParams struct {
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
}

func (q *Queries) ListTodosCompletedBetween(ctx context.Context, arg ListTodosCompletedBetweenParams) ([]todo.Todo, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT `+todoColumns+` FROM todos
		WHERE user_id = $1 AND status = 'completed'
		  AND completed_at >= $2 AND completed_at < $3
		ORDER BY completed_at DESC`,
		arg.UserID, arg.Start, arg.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}
