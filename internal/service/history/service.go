// Package history implements the per-user search history: recording
// lookups, listing, clearing and prefix suggestions.
package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictlookup/internal/config"
	"github.com/heartmarshall/dictlookup/internal/domain"
)

type historyRepo interface {
	Upsert(ctx context.Context, item *domain.HistoryItem) (*domain.HistoryItem, error)
	TrimToNewest(ctx context.Context, userID uuid.UUID, keep int) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryItem, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides search history operations for the authenticated user.
type Service struct {
	log     *slog.Logger
	history historyRepo
	tx      txManager
	cfg     config.HistoryConfig
	now     func() time.Time
}

// NewService creates a new history service.
func NewService(logger *slog.Logger, history historyRepo, tx txManager, cfg config.HistoryConfig) *Service {
	return &Service{
		log:     logger.With("service", "history"),
		history: history,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
	}
}
