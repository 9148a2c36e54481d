// Package dictionary implements word lookup: input validation, the provider
// call, response normalization and history recording.
package dictionary

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/dictlookup/internal/adapter/provider/youdao"
	"github.com/heartmarshall/dictlookup/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type translator interface {
	Translate(ctx context.Context, q domain.TranslationQuery) (*youdao.Payload, error)
}

type historyRecorder interface {
	Add(ctx context.Context, query string, d domain.Direction) (*domain.HistoryItem, error)
}

// Service implements dictionary lookups.
type Service struct {
	log        *slog.Logger
	translator translator
	history    historyRecorder
}

// NewService creates a new dictionary service. history may be nil, in which
// case searches are not recorded.
func NewService(logger *slog.Logger, translator translator, history historyRecorder) *Service {
	return &Service{
		log:        logger.With("service", "dictionary"),
		translator: translator,
		history:    history,
	}
}
