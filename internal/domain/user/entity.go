package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Skills       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
