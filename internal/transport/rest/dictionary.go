package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dictlookup/internal/domain"
	"github.com/heartmarshall/dictlookup/internal/service/dictionary"
)

type dictionaryService interface {
	Search(ctx context.Context, input dictionary.SearchInput) (*domain.WordDefinition, error)
}

// DictionaryHandler serves word lookups.
type DictionaryHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{svc: svc, log: logger.With("handler", "dictionary")}
}

// Search handles GET /dictionary/search?q=...&lang=en-zh|zh-en.
func (h *DictionaryHandler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	def, err := h.svc.Search(r.Context(), dictionary.SearchInput{
		Query: params.Get("q"),
		Lang:  params.Get("lang"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, def)
}
