package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictlookup/internal/domain"
	"github.com/heartmarshall/dictlookup/pkg/ctxutil"
)

// Add records query for the authenticated user. A repeated query moves to
// the front with the new direction; only the newest MaxItems are kept.
func (s *Service) Add(ctx context.Context, query string, d domain.Direction) (*domain.HistoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	query = domain.NormalizeQuery(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "required")
	}
	if !d.IsValid() {
		return nil, domain.NewValidationError("lang", "unsupported")
	}

	var saved *domain.HistoryItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.history.Upsert(txCtx, &domain.HistoryItem{
			ID:         uuid.New(),
			UserID:     userID,
			Query:      query,
			Direction:  d,
			SearchedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("upsert: %w", err)
		}

		trimmed, err := s.history.TrimToNewest(txCtx, userID, s.cfg.MaxItems)
		if err != nil {
			return fmt.Errorf("trim: %w", err)
		}
		if trimmed > 0 {
			s.log.DebugContext(ctx, "history trimmed",
				slog.String("user_id", userID.String()),
				slog.Int64("removed", trimmed))
		}

		saved = item
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("history.Add: %w", err)
	}

	return saved, nil
}

// List returns the authenticated user's history, newest first.
func (s *Service) List(ctx context.Context) ([]domain.HistoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.history.ListByUser(ctx, userID, s.cfg.MaxItems)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}
	return items, nil
}

// Clear removes the authenticated user's whole history.
func (s *Service) Clear(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	n, err := s.history.DeleteByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("history.Clear: %w", err)
	}

	s.log.InfoContext(ctx, "history cleared",
		slog.String("user_id", userID.String()),
		slog.Int64("removed", n))
	return nil
}

// SuggestInput holds parameters for Suggest.
type SuggestInput struct {
	Prefix    string
	Direction domain.Direction
	Limit     int
}

// Suggest returns past queries of the same direction that start with
// Prefix, compared case-insensitively, newest first. An empty prefix yields
// no suggestions. Limit 0 means the configured default; larger values are
// capped at the configured maximum.
func (s *Service) Suggest(ctx context.Context, input SuggestInput) ([]string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	prefix := domain.FoldKey(input.Prefix)
	if prefix == "" {
		return []string{}, nil
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultSuggestions
	}
	limit = min(limit, s.cfg.MaxSuggestions)

	items, err := s.history.ListByUser(ctx, userID, s.cfg.MaxItems)
	if err != nil {
		return nil, fmt.Errorf("history.Suggest: %w", err)
	}

	out := make([]string, 0, limit)
	for _, item := range items {
		if len(out) == limit {
			break
		}
		if item.Direction != input.Direction {
			continue
		}
		if strings.HasPrefix(domain.FoldKey(item.Query), prefix) {
			out = append(out, item.Query)
		}
	}
	return out, nil
}

func (i SuggestInput) validate() error {
	var errs []domain.FieldError

	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "lang", Message: "unsupported"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
