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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/ekshore/loot-list/internal/access"
	"github.com/ekshore/loot-list/internal/adapter/postgres"
	"github.com/ekshore/loot-list/internal/adapter/postgres/authmethod"
	itemrepo "github.com/ekshore/loot-list/internal/adapter/postgres/item"
	listrepo "github.com/ekshore/loot-list/internal/adapter/postgres/list"
	userrepo "github.com/ekshore/loot-list/internal/adapter/postgres/user"
	"github.com/ekshore/loot-list/internal/auth"
	"github.com/ekshore/loot-list/internal/config"
	authsvc "github.com/ekshore/loot-list/internal/service/auth"
	"github.com/ekshore/loot-list/internal/service/feed"
	"github.com/ekshore/loot-list/internal/service/item"
	"github.com/ekshore/loot-list/internal/service/list"
	usersvc "github.com/ekshore/loot-list/internal/service/user"
	"github.com/ekshore/loot-list/internal/transport/middleware"
	"github.com/ekshore/loot-list/internal/transport/rest"
)

const limiterCleanupInterval = time.Minute

// Run is the application entry point. It wires storage, services and the
// HTTP transport, then serves until ctx is cancelled or SIGINT/SIGTERM arrives.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	users := userrepo.New(pool)
	authMethods := authmethod.New(pool)
	lists := listrepo.New(pool)
	items := itemrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	checker := access.NewChecker(lists, items)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, authMethods, tx, tokens, cfg.Auth)
	listService := list.NewService(logger, lists, items, checker, tx)
	itemService := item.NewService(logger, items, lists, checker, tx)
	feedService := feed.NewService(logger, lists)
	userService := usersvc.NewService(logger, users)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	purchaseLimit, stopPurchase := newLimiter(cfg.RateLimit.PurchasePerMinute, cfg.RateLimit.PurchaseBurst)
	defer stopPurchase()
	authLimit, stopAuth := newLimiter(cfg.RateLimit.AuthPerMinute, cfg.RateLimit.AuthBurst)
	defer stopAuth()

	mux := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(pool, Version),
		Auth:    rest.NewAuthHandler(authService, logger),
		Lists:   rest.NewListHandler(listService, logger),
		Items:   rest.NewItemHandler(itemService, logger),
		Feed:    rest.NewFeedHandler(feedService, logger),
		Profile: rest.NewProfileHandler(userService, logger),
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}, rest.Limits{
		Purchase: purchaseLimit,
		Auth:     authLimit,
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		metrics.Middleware(),
	)(mux)

	return serve(ctx, newServer(cfg.Server, handler), cfg.Server.ShutdownTimeout, logger)
}

func newServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newLimiter returns a nil middleware when perMinute is zero.
func newLimiter(perMinute, burst int) (middleware.Middleware, func()) {
	if perMinute <= 0 {
		return nil, func() {}
	}
	rl := middleware.NewRateLimiter(perMinute, burst, limiterCleanupInterval)
	return rl.Middleware(), rl.Stop
}
