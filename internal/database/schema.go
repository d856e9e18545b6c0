package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// statements are idempotent and applied in order at startup.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL,
		requirements TEXT[] NOT NULL DEFAULT '{}',
		salary TEXT,
		apply_link TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'IT',
		job_type TEXT NOT NULL DEFAULT 'Full-time',
		experience_level TEXT NOT NULL DEFAULT 'Fresher',
		company_description TEXT,
		is_fresher_friendly BOOLEAN NOT NULL DEFAULT false,
		posted_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_posted_date ON jobs (posted_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_slug ON jobs (slug)`,
	`CREATE TABLE IF NOT EXISTS visitors (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		ip_address TEXT NOT NULL,
		user_agent TEXT NOT NULL,
		page TEXT NOT NULL,
		referrer TEXT NOT NULL DEFAULT 'direct',
		device TEXT NOT NULL DEFAULT 'desktop',
		browser TEXT NOT NULL DEFAULT 'unknown',
		os TEXT NOT NULL DEFAULT 'unknown',
		session_id TEXT NOT NULL,
		visit_count INTEGER NOT NULL DEFAULT 1,
		visited_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (session_id, page)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visitors_visited_at ON visitors (visited_at DESC)`,
	`CREATE TABLE IF NOT EXISTS analytics (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		event_type TEXT NOT NULL,
		event_data TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		device TEXT NOT NULL DEFAULT 'desktop',
		session_id TEXT NOT NULL DEFAULT 'anonymous',
		timestamp TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analytics_event_type_ts ON analytics (event_type, timestamp DESC)`,
}

// Bootstrap applies the schema statements. Safe to run on every startup.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}
	return nil
}
