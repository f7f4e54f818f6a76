// Command seeder loads demo users, lists and items from a YAML fixture
// through the regular services. It is meant for local and staging
// databases, not production.
//
// Flags:
//
//	--fixture        path to the fixture file (overrides seeder config)
//	--dry-run        validate the fixture without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ekshore/loot-list/internal/access"
	"github.com/ekshore/loot-list/internal/adapter/postgres"
	"github.com/ekshore/loot-list/internal/adapter/postgres/authmethod"
	itemrepo "github.com/ekshore/loot-list/internal/adapter/postgres/item"
	listrepo "github.com/ekshore/loot-list/internal/adapter/postgres/list"
	userrepo "github.com/ekshore/loot-list/internal/adapter/postgres/user"
	"github.com/ekshore/loot-list/internal/app"
	"github.com/ekshore/loot-list/internal/app/seeder"
	"github.com/ekshore/loot-list/internal/auth"
	"github.com/ekshore/loot-list/internal/config"
	authsvc "github.com/ekshore/loot-list/internal/service/auth"
	"github.com/ekshore/loot-list/internal/service/item"
	"github.com/ekshore/loot-list/internal/service/list"
)

func main() {
	fixtureFlag := flag.String("fixture", "", "path to the fixture file")
	dryRunFlag := flag.Bool("dry-run", false, "validate the fixture without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	if *fixtureFlag != "" {
		os.Setenv("SEEDER_FIXTURE_PATH", *fixtureFlag) //nolint:errcheck
	}
	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	fixture, err := seeder.LoadFixture(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if !appCfg.Database.SkipMigrations && !seederCfg.DryRun {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	users := userrepo.New(pool)
	lists := listrepo.New(pool)
	items := itemrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	checker := access.NewChecker(lists, items)
	tokens := auth.NewJWTManager(appCfg.Auth.JWTSecret, appCfg.Auth.JWTIssuer, appCfg.Auth.AccessTokenTTL)

	pipeline := seeder.NewPipeline(logger,
		authsvc.NewService(logger, users, authmethod.New(pool), tx, tokens, appCfg.Auth),
		list.NewService(logger, lists, items, checker, tx),
		item.NewService(logger, items, lists, checker, tx),
		*seederCfg,
	)

	if _, err := pipeline.Run(ctx, fixture); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
