package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/akyairhashvil/searchhist/internal/config"
	"github.com/akyairhashvil/searchhist/internal/database"
	"github.com/akyairhashvil/searchhist/internal/history"
	"github.com/akyairhashvil/searchhist/internal/util"
)

// app bundles what every command needs: config, logger, and the history
// store over the opened database.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *database.Database
	store  *history.Store
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath := cfg.Storage.DBPath()
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		logger.Error("open database", zap.String("path", dbPath), zap.Error(err))
		_ = logger.Sync()
		if errors.Is(err, database.ErrDatabaseCorrupted) {
			return nil, fmt.Errorf("%w: remove %s to start over", err, dbPath)
		}
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		db:     db,
		store:  history.NewStore(db, history.WithLogger(logger)),
	}, nil
}

func (a *app) Close() {
	util.LogError(a.logger, "close database", a.db.Close())
	_ = a.logger.Sync()
}
