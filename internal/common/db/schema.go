package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

// PostgresSchema creates the tracker tables. seq keeps insertion order for log
// queries independent of id ordering.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS users (
    seq        BIGSERIAL PRIMARY KEY,
    id         TEXT NOT NULL UNIQUE,
    username   TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS exercises (
    seq         BIGSERIAL PRIMARY KEY,
    id          TEXT NOT NULL UNIQUE,
    user_id     TEXT NOT NULL REFERENCES users (id),
    description TEXT NOT NULL,
    duration    BIGINT NOT NULL,
    date        TIMESTAMPTZ NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS exercises_user_id_seq_idx ON exercises (user_id, seq);
`

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, PostgresSchema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
