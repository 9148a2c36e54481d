package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictlookup/internal/config"
	"github.com/heartmarshall/dictlookup/internal/transport/middleware"
	"github.com/heartmarshall/dictlookup/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type routerDeps struct {
	logger  *slog.Logger
	cfg     *config.Config
	limiter *middleware.RateLimiter
	tokens  tokenValidator

	dictionary *rest.DictionaryHandler
	auth       *rest.AuthHandler
	history    *rest.HistoryHandler
	health     *rest.HealthHandler
}

func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	search := d.limiter.Limit("search", d.cfg.RateLimit.SearchPerMinute)
	account := d.limiter.Limit("auth", d.cfg.RateLimit.AuthPerMinute)
	private := middleware.Chain(search, middleware.RequireAuth)

	mux.Handle("GET /dictionary/search", search(http.HandlerFunc(d.dictionary.Search)))

	mux.Handle("POST /auth/register", account(http.HandlerFunc(d.auth.Register)))
	mux.Handle("POST /auth/login", account(http.HandlerFunc(d.auth.Login)))

	mux.Handle("GET /history", private(http.HandlerFunc(d.history.List)))
	mux.Handle("DELETE /history", private(http.HandlerFunc(d.history.Clear)))
	mux.Handle("GET /history/suggestions", private(http.HandlerFunc(d.history.Suggestions)))

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	mux.Handle("/", middleware.NotFound())

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(d.logger),
		middleware.Recovery(d.logger),
		middleware.CORS(d.cfg.CORS),
		middleware.Auth(d.tokens),
	)(mux)
}
