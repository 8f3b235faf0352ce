package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/penpaperdiary/penpaper-api/internal/diary"
)

const diaryColumns = "id, created_at, updated_at, user_id, title, content, category, date, images, is_archived, archived_at"

func scanDiary(row rowScanner) (diary.Diary, error) {
	var (
		d          diary.Diary
		archivedAt sql.NullTime
	)
	err := row.Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt, &d.UserID, &d.Title, &d.Content,
		&d.Category, &d.Date, pq.Array(&d.Images), &d.IsArchived, &archivedAt)
	if err != nil {
		return diary.Diary{}, err
	}
	if archivedAt.Valid {
		at := archivedAt.Time
		d.ArchivedAt = &at
	}
	return d, nil
}

func (q *Queries) queryDiaries(ctx context.Context, query string, args ...any) ([]diary.Diary, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var diaries []diary.Diary
	for rows.Next() {
		d, err := scanDiary(rows)
		if err != nil {
			return nil, err
		}
		diaries = append(diaries, d)
	}
	return diaries, rows.Err()
}

type CreateDiaryParams struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    string
	Content  string
	Category string
	Date     time.Time
	Images   []string
}

func (q *Queries) CreateDiary(ctx context.Context, arg CreateDiaryParams) (diary.Diary, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO diaries (id, created_at, updated_at, user_id, title, content, category, date, images, is_archived)
		VALUES ($1, now(), now(), $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING `+diaryColumns,
		arg.ID, arg.UserID, arg.Title, arg.Content, arg.Category, arg.Date, pq.Array(arg.Images))
	return scanDiary(row)
}

func (q *Queries) GetDiaryByID(ctx context.Context, id uuid.UUID) (diary.Diary, error) {
	row := q.db.QueryRowContext(ctx,
		"SELECT "+diaryColumns+" FROM diaries WHERE id = $1", id)
	return scanDiary(row)
}

func (q *Queries) ListDiaries(ctx context.Context, userID uuid.UUID) ([]diary.Diary, error) {
	return q.queryDiaries(ctx, `
		SELECT `+diaryColumns+` FROM diaries
		WHERE user_id = $1
		ORDER BY date DESC`,
		userID)
}

type ListDiariesByDateParams struct {
	UserID uuid.UUID
	Start  time.Time
	End    time.Time
}

func (q *Queries) ListDiariesByDate(ctx context.Context, arg ListDiariesByDateParams) ([]diary.Diary, error) {
	return q.queryDiaries(ctx, `
		SELECT `+diaryColumns+` FROM diaries
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC`,
		arg.UserID, arg.Start, arg.End)
}

func (q *Queries) ListArchivedDiaries(ctx context.Context, userID uuid.UUID) ([]diary.Diary, error) {
	return q.queryDiaries(ctx, `
		SELECT `+diaryColumns+` FROM diaries
		WHERE user_id = $1 AND is_archived
		ORDER BY date DESC`,
		userID)
}

type UpdateDiaryParams struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    string
	Content  string
	Category string
	Date     time.Time
	Images   []string
}

// UpdateDiary overwrites the entry's editable fields. The user id constrains
// the lookup, so a non-owner sees sql.ErrNoRows.
func (q *Queries) UpdateDiary(ctx context.Context, arg UpdateDiaryParams) (diary.Diary, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE diaries
		SET title = $3, content = $4, category = $5, date = $6, images = $7, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+diaryColumns,
		arg.ID, arg.UserID, arg.Title, arg.Content, arg.Category, arg.Date, pq.Array(arg.Images))
	return scanDiary(row)
}

type ArchiveDiaryParams struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ArchivedAt time.Time
}

func (q *Queries) ArchiveDiary(ctx context.Context, arg ArchiveDiaryParams) (diary.Diary, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE diaries
		SET is_archived = TRUE, archived_at = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+diaryColumns,
		arg.ID, arg.UserID, arg.ArchivedAt)
	return scanDiary(row)
}

type UnarchiveDiaryParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) UnarchiveDiary(ctx context.Context, arg UnarchiveDiaryParams) (diary.Diary, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE diaries
		SET is_archived = FALSE, archived_at = NULL, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+diaryColumns,
		arg.ID, arg.UserID)
	return scanDiary(row)
}

type DeleteDiaryParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (q *Queries) DeleteDiary(ctx context.Context, arg DeleteDiaryParams) error {
	var deleted uuid.UUID
	return q.db.QueryRowContext(ctx,
		"DELETE FROM diaries WHERE id = $1 AND user_id = $2 RETURNING id",
		arg.ID, arg.UserID).Scan(&deleted)
}
