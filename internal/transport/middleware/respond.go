package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/dictlookup/internal/transport/i18n"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeError writes a localized JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, status int, key i18n.Key) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: i18n.FromRequest(r).Text(key)}) //nolint:errcheck
}

// NotFound returns a handler answering every request with a localized 404.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, i18n.NotFound)
	})
}
