package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/dictlookup/internal/domain"
	"github.com/heartmarshall/dictlookup/internal/service/history"
	"github.com/heartmarshall/dictlookup/internal/transport/i18n"
)

type historyService interface {
	List(ctx context.Context) ([]domain.HistoryItem, error)
	Clear(ctx context.Context) error
	Suggest(ctx context.Context, input history.SuggestInput) ([]string, error)
}

// HistoryHandler serves the signed-in user's search history. Routes must be
// wrapped with middleware.RequireAuth.
type HistoryHandler struct {
	svc historyService
	log *slog.Logger
}

// NewHistoryHandler creates a HistoryHandler.
func NewHistoryHandler(svc historyService, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{svc: svc, log: logger.With("handler", "history")}
}

// historyItemResponse mirrors a client-side history entry; Timestamp is in
// Unix milliseconds.
type historyItemResponse struct {
	Query     string `json:"query"`
	Lang      string `json:"lang"`
	Timestamp int64  `json:"timestamp"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// List handles GET /history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]historyItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, historyItemResponse{
			Query:     it.Query,
			Lang:      it.Direction.String(),
			Timestamp: it.SearchedAt.UnixMilli(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Clear handles DELETE /history.
func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Suggestions handles GET /history/suggestions?q=...&lang=...&limit=N.
func (h *HistoryHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	limit := 0
	if raw := params.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, i18n.LimitInvalid)
			return
		}
		limit = n
	}

	suggestions, err := h.svc.Suggest(r.Context(), history.SuggestInput{
		Prefix:    params.Get("q"),
		Direction: domain.Direction(params.Get("lang")),
		Limit:     limit,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}
