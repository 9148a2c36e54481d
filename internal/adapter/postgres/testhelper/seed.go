package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dictlookup/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedHistory inserts a history item for userID searched at the given time.
func SeedHistory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, query string, d domain.Direction, at time.Time) domain.HistoryItem {
	t.Helper()

	item := domain.HistoryItem{
		ID:         uuid.New(),
		UserID:     userID,
		Query:      query,
		Direction:  d,
		SearchedAt: at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO search_history (id, user_id, query, direction, searched_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.UserID, item.Query, string(item.Direction), item.SearchedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHistory: %v", err)
	}

	return item
}
