package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"guarashopp-storefront/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context, visitorID, key string) (string, error) {
	const q = `
SELECT value
FROM client_state
WHERE visitor_id = $1 AND key = $2
LIMIT 1
`
	var value string
	if err := r.pool.QueryRow(ctx, q, visitorID, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *postgresRepo) Set(ctx context.Context, visitorID, key, value string) error {
	const q = `
INSERT INTO client_state (visitor_id, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (visitor_id, key) DO UPDATE
SET value = EXCLUDED.value, updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, visitorID, key, value)
	return err
}

// Delete is idempotent: removing an absent key is not an error.
func (r *postgresRepo) Delete(ctx context.Context, visitorID, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM client_state WHERE visitor_id = $1 AND key = $2`, visitorID, key)
	return err
}

func (r *postgresRepo) DeleteIdle(ctx context.Context, before time.Time) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM client_state WHERE updated_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
