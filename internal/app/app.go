// Package app wires configuration, storage, services and the HTTP server
// together and runs them until the process is signalled to stop.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dictlookup/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/dictlookup/internal/adapter/postgres/history"
	userrepo "github.com/heartmarshall/dictlookup/internal/adapter/postgres/user"
	"github.com/heartmarshall/dictlookup/internal/adapter/provider/youdao"
	"github.com/heartmarshall/dictlookup/internal/auth"
	"github.com/heartmarshall/dictlookup/internal/config"
	authsvc "github.com/heartmarshall/dictlookup/internal/service/auth"
	"github.com/heartmarshall/dictlookup/internal/service/dictionary"
	historysvc "github.com/heartmarshall/dictlookup/internal/service/history"
	"github.com/heartmarshall/dictlookup/internal/transport/middleware"
	"github.com/heartmarshall/dictlookup/internal/transport/rest"
)

// Run is the application entry point. It returns when ctx is cancelled or
// SIGINT/SIGTERM arrives and the server has drained, or when startup fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("app: database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	historyRepo := historyrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	historyService := historysvc.NewService(logger, historyRepo, txm, cfg.History)
	dictionaryService := dictionary.NewService(logger, youdao.NewClient(cfg.Youdao, logger), historyService)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newRouter(routerDeps{
		logger:     logger,
		cfg:        cfg,
		limiter:    limiter,
		tokens:     authService,
		dictionary: rest.NewDictionaryHandler(dictionaryService, logger),
		auth:       rest.NewAuthHandler(authService, logger),
		history:    rest.NewHistoryHandler(historyService, logger),
		health:     rest.NewHealthHandler(Version, rest.Check{Name: "database", Ping: pool.Ping}),
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done, then shuts it down within the
// configured timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
