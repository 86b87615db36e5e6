// Package main is the entry point for the Forum API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"forumapi/src/app/server"
	"forumapi/src/infra/config"
	"forumapi/src/infra/db"
	"forumapi/src/infra/idgen"
	"forumapi/src/infra/logger"
	"forumapi/src/infra/repo"
	"forumapi/src/infra/repo/memrepo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"storage", cfg.Storage.Driver,
		"log_level", cfg.Log.Level,
	)

	ctx := context.Background()

	repos, cleanup, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := server.New(cfg, log, repos)

	// Run blocks until shutdown signal is received
	return srv.Run(ctx)
}

// openStorage builds the repositories selected by APP_STORAGE.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (server.Repositories, func(), error) {
	ids, clock := idgen.UUID{}, idgen.SystemClock{}

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		store := memrepo.New(ids, clock)
		return server.Repositories{Threads: store, Comments: store}, func() {}, nil

	case config.StoragePostgres:
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return server.Repositories{}, nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := pg.Migrate(ctx); err != nil {
				pg.Close()
				return server.Repositories{}, nil, err
			}
		}
		repoLog := logger.WithComponent(log, "repo")
		return server.Repositories{
			Threads:  repo.NewThreadRepository(pg, ids, clock, repoLog),
			Comments: repo.NewCommentRepository(pg, ids, clock, repoLog),
		}, pg.Close, nil

	default:
		return server.Repositories{}, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
