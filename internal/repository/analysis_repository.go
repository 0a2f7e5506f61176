package repository

import (
	"context"

	"career-path/internal/database"
	"career-path/internal/domain/analysis"

	"github.com/google/uuid"
)

type PostgresAnalysisRepository struct {
	db database.DB
}

func NewPostgresAnalysisRepository(db database.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

func (r *PostgresAnalysisRepository) Create(ctx context.Context, rec analysis.Record) error {
	input := rec.InputSkills
	if input == nil {
		input = []string{}
	}
	missing := rec.MissingSkills
	if missing == nil {
		missing = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_gap_analyses (id, user_id, target_role, input_skills, missing_skills)
		 VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.UserID, rec.TargetRole, input, missing,
	)
	return err
}

func (r *PostgresAnalysisRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]analysis.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, target_role, input_skills, missing_skills, created_at
		 FROM skill_gap_analyses
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]analysis.Record, 0)
	for rows.Next() {
		var rec analysis.Record
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.TargetRole, &rec.InputSkills, &rec.MissingSkills, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
