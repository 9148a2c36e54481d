// Package rest implements the JSON HTTP API.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/dictlookup/internal/domain"
	"github.com/heartmarshall/dictlookup/internal/transport/i18n"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, key i18n.Key, args ...any) {
	writeJSON(w, status, errorResponse{Error: i18n.FromRequest(r).Text(key, args...)})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(dst)
}

// handleError maps a service error onto a status and a localized message.
// Unexpected errors are logged; their text is never sent to the client.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		verr *domain.ValidationError
		terr *domain.TranslationError
	)
	switch {
	case errors.As(err, &verr):
		writeError(w, r, http.StatusBadRequest, validationKey(verr))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, r, http.StatusUnauthorized, i18n.Unauthorized)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, i18n.EmailTaken)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, i18n.NotFound)
	case errors.As(err, &terr):
		log.ErrorContext(r.Context(), "translation failed",
			slog.Int("retries", terr.Retries),
			slog.Bool("aborted", terr.Aborted),
			slog.String("error", err.Error()))
		if terr.Aborted && errors.Is(terr, context.DeadlineExceeded) {
			writeError(w, r, http.StatusInternalServerError, i18n.TranslationTimeout)
			return
		}
		writeError(w, r, http.StatusInternalServerError, i18n.TranslationFailed, terr.Retries)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, r, http.StatusInternalServerError, i18n.Internal)
	}
}

// validationKey picks the message for the first field error.
func validationKey(verr *domain.ValidationError) i18n.Key {
	if len(verr.Errors) == 0 {
		return i18n.InvalidInput
	}
	fe := verr.Errors[0]
	switch fe.Field {
	case "q":
		if fe.Message == "too long" {
			return i18n.QueryTooLong
		}
		return i18n.QueryRequired
	case "lang":
		return i18n.LangUnsupported
	case "limit":
		return i18n.LimitInvalid
	case "email":
		if fe.Message == "required" {
			return i18n.EmailRequired
		}
		return i18n.EmailInvalid
	case "password":
		switch fe.Message {
		case "required":
			return i18n.PasswordRequired
		case "too short":
			return i18n.PasswordTooShort
		case "too long":
			return i18n.PasswordTooLong
		}
	}
	return i18n.InvalidInput
}
