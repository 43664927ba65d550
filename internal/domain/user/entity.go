package user

import (
	"time"

	"github.com/google/uuid"
)

// User is immutable after registration; there is no update or delete.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Mobile       string
	PasswordHash string
	CreatedAt    time.Time
}
