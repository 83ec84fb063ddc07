package history

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces a record keyed by ID. Replays of the same ID are
// idempotent.
func (r *PGRepo) Upsert(ctx context.Context, record Record) error {
	const query = `
INSERT INTO generation_history (id, jd, profile, html, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET jd = EXCLUDED.jd, profile = EXCLUDED.profile, html = EXCLUDED.html, created_at = EXCLUDED.created_at`
	profile := record.Profile
	if len(profile) == 0 {
		profile = []byte("{}")
	}
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.JD,
		[]byte(profile),
		record.HTML,
		record.CreatedAt,
	)
	return err
}

// GetByID returns a record by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Record, error) {
	const query = `
SELECT id, jd, profile, html, created_at
FROM generation_history
WHERE id = $1
LIMIT 1`
	var record Record
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.JD,
		&record.Profile,
		&record.HTML,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return record, nil
}

// ListRecent returns records ordered newest-first.
func (r *PGRepo) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT id, jd, profile, html, created_at
FROM generation_history
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.ID,
			&record.JD,
			&record.Profile,
			&record.HTML,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
