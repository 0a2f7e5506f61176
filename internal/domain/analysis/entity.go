package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is a single persisted skill-gap analysis. Records are append-only:
// created once per analysis call, never updated or deleted.
type Record struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	TargetRole    string
	InputSkills   []string
	MissingSkills []string
	CreatedAt     time.Time
}

type Repository interface {
	Create(ctx context.Context, rec Record) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Record, error)
}
