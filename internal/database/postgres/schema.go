package postgres

import (
	"context"

	"career-path/internal/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		skills TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS skill_gap_analyses (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		target_role TEXT NOT NULL,
		input_skills TEXT[] NOT NULL DEFAULT '{}',
		missing_skills TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_skill_gap_analyses_user_created
		ON skill_gap_analyses (user_id, created_at DESC)`,
}

// EnsureSchema creates the tables this service owns. Statements are
// idempotent so startup can run it unconditionally.
func EnsureSchema(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
