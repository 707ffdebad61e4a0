package postgres

import (
	"context"
	"fmt"
)

// schemaStatements create the tables the job repository reads. Companies and
// applications are owned by other services; they are created here so a fresh
// database can serve the job endpoints.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id          UUID PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		website     TEXT NOT NULL DEFAULT '',
		location    TEXT NOT NULL DEFAULT '',
		logo        TEXT NOT NULL DEFAULT '',
		user_id     UUID,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id               UUID PRIMARY KEY,
		title            TEXT NOT NULL,
		description      TEXT NOT NULL,
		requirements     TEXT[] NOT NULL DEFAULT '{}',
		salary           DOUBLE PRECISION NOT NULL,
		location         TEXT NOT NULL,
		job_type         TEXT NOT NULL,
		experience_level DOUBLE PRECISION NOT NULL,
		position         DOUBLE PRECISION NOT NULL,
		company_id       UUID NOT NULL REFERENCES companies (id),
		created_by       UUID NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS jobs_created_at_idx ON jobs (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS jobs_created_by_idx ON jobs (created_by, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id           UUID PRIMARY KEY,
		job_id       UUID NOT NULL REFERENCES jobs (id) ON DELETE CASCADE,
		applicant_id UUID NOT NULL,
		status       TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'accepted', 'rejected')),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS applications_job_id_idx ON applications (job_id)`,
}

// Migrate creates the job board tables if they do not exist.
func Migrate(ctx context.Context, db Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
