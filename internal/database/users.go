package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Name           string
	Email          string
	HashedPassword string
	PIN            sql.NullString
}

const userColumns = "id, created_at, updated_at, name, email, hashed_password, pin"

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Name, &u.Email, &u.HashedPassword, &u.PIN)
	return u, err
}

type CreateUserParams struct {
	Name           string
	Email          string
	HashedPassword string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO users (id, created_at, updated_at, name, email, hashed_password)
		VALUES (gen_random_uuid(), now(), now(), $1, $2, $3)
		RETURNING `+userColumns,
		arg.Name, arg.Email, arg.HashedPassword)
	return scanUser(row)
}

func (q *Queries) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1", email)
	return scanUser(row)
}

type SetUserPINParams struct {
	ID  uuid.UUID
	PIN string
}

func (q *Queries) SetUserPIN(ctx context.Context, arg SetUserPINParams) error {
	var id uuid.UUID
	return q.db.QueryRowContext(ctx, `
		UPDATE users SET pin = $2, updated_at = now()
		WHERE id = $1
		RETURNING id`,
		arg.ID, arg.PIN).Scan(&id)
}

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT count(*) FROM users").Scan(&count)
	return count, err
}

// DeleteAllUsers wipes every user; todos and diaries go with them via the
// cascading foreign keys. Dev platform only.
func (q *Queries) DeleteAllUsers(ctx context.Context) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM users")
	return err
}
