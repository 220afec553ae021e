package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/99designs/gqlgen/graphql/playground"

	"github.com/heartmarshall/prefstore-backend/internal/adapter/postgres"
	"github.com/heartmarshall/prefstore-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/prefstore-backend/internal/adapter/postgres/setting"
	"github.com/heartmarshall/prefstore-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/prefstore-backend/internal/adapter/prefsync"
	"github.com/heartmarshall/prefstore-backend/internal/auth"
	"github.com/heartmarshall/prefstore-backend/internal/cache"
	"github.com/heartmarshall/prefstore-backend/internal/config"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
	"github.com/heartmarshall/prefstore-backend/internal/service/account"
	"github.com/heartmarshall/prefstore-backend/internal/service/settings"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/prefstore-backend/internal/transport/middleware"
	"github.com/heartmarshall/prefstore-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires
// adapters and services, and serves HTTP until ctx is cancelled.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Adapters.
	userRepo := user.New(pool)
	settingRepo := setting.New(pool)
	activityRepo := activity.New(pool)
	txManager := postgres.NewTxManager(pool)
	syncClient := prefsync.New(cfg.PrefSync.BaseURL, cfg.PrefSync.Timeout, logger)
	userCache := cache.New[*domain.User](cfg.Cache.MaxEntries, cfg.Cache.TTL)

	// Services.
	accountSvc := account.NewService(logger, userRepo, userCache)
	settingsSvc := settings.NewService(logger, userRepo, settingRepo, activityRepo, txManager, syncClient, userCache)

	// Transport.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	res := resolver.NewResolver(logger, accountSvc, settingsSvc)
	gqlSrv := graphql.NewServer(logger, cfg.GraphQL, res)

	loaderRepos := &dataloader.Repos{
		Setting:  settingRepo,
		Activity: activityRepo,
	}

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		dataloader.Middleware(loaderRepos),
	)

	health := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("/query", chain(gqlSrv))
	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /", playground.Handler("GraphQL Playground", "/query"))
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")

	return nil
}
