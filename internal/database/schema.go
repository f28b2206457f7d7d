package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS pricing_sessions (
    id UUID PRIMARY KEY,
    title TEXT NOT NULL,
    expenses JSONB NOT NULL,
    income_settings JSONB NOT NULL,
    creator_data JSONB NOT NULL,
    selected_rate_tier TEXT NOT NULL,
    markup DOUBLE PRECISION NOT NULL DEFAULT 0,
    custom_services JSONB NOT NULL DEFAULT '[]',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS contracts (
    id UUID PRIMARY KEY,
    data JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_pricing_sessions_updated_at ON pricing_sessions (updated_at DESC);
CREATE INDEX IF NOT EXISTS idx_contracts_updated_at ON contracts (updated_at DESC);
`

// Migrate создает таблицы приложения, если их еще нет.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
