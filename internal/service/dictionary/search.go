package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/dictlookup/internal/adapter/provider/youdao"
	"github.com/heartmarshall/dictlookup/internal/domain"
	"github.com/heartmarshall/dictlookup/pkg/ctxutil"
)

// Search looks up a word or phrase and returns its normalized definition.
// Only surrounding whitespace is stripped from the query; the rest reaches
// the provider and the result's Word unchanged.
// The provider client owns retries; Search calls it once. For authenticated
// callers the query is added to their history; a history failure is logged
// and does not fail the lookup.
func (s *Service) Search(ctx context.Context, input SearchInput) (*domain.WordDefinition, error) {
	input.Query = strings.TrimSpace(input.Query)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	direction := domain.Direction(input.Lang)
	q, err := domain.NewTranslationQuery(input.Query, direction)
	if err != nil {
		return nil, err
	}

	payload, err := s.translator.Translate(ctx, q)
	if err != nil {
		s.log.ErrorContext(ctx, "lookup failed",
			slog.String("q", q.Text),
			slog.String("lang", direction.String()),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("dictionary.Search: %w", err)
	}

	def := youdao.Normalize(payload, q.Text)

	s.record(ctx, q.Text, direction)

	return &def, nil
}

func (s *Service) record(ctx context.Context, query string, d domain.Direction) {
	if s.history == nil {
		return
	}
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return
	}
	if _, err := s.history.Add(ctx, query, d); err != nil {
		s.log.WarnContext(ctx, "record history failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}
