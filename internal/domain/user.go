package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. PasswordHash is a bcrypt hash and
// never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HistoryItem is one remembered search of a user.
type HistoryItem struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Query      string
	Direction  Direction
	SearchedAt time.Time
}
