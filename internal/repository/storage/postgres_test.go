package storage

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/migrate"
)

func TestPostgres_RoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE client_state`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	repo := NewPostgres(pool)
	if err := repo.Set(ctx, "v1", KeyCart, `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "v1", KeyCart, `[]`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, err := repo.Get(ctx, "v1", KeyCart)
	if err != nil || got != `[]` {
		t.Fatalf("Get = %q, %v", got, err)
	}

	n, err := repo.DeleteIdle(ctx, time.Now().Add(time.Minute))
	if err != nil || n != 1 {
		t.Fatalf("DeleteIdle = %d, %v", n, err)
	}
	if _, err := repo.Get(ctx, "v1", KeyCart); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "v1", KeyCart); err != nil {
		t.Fatalf("Delete on missing key: %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}
