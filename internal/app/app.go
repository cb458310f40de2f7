// Package app wires configuration into a ready-to-serve HTTP server.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/denisok6893-rgb/brew-matching/internal/catalog"
	"github.com/denisok6893-rgb/brew-matching/internal/config"
	"github.com/denisok6893-rgb/brew-matching/internal/domain"
	httpapi "github.com/denisok6893-rgb/brew-matching/internal/http"
	"github.com/denisok6893-rgb/brew-matching/internal/matching"
	"github.com/denisok6893-rgb/brew-matching/internal/metrics"
	"github.com/denisok6893-rgb/brew-matching/internal/storage"
)

type App struct {
	Engine  *matching.Engine
	Server  *httpapi.Server
	Store   *storage.SQLiteStore
	Metrics *metrics.Recorder
}

// Build opens the catalog and optional store and assembles the server.
//
// The catalog comes from catalog.path when set. Otherwise a non-empty
// SQLite store supplies it, and the embedded catalog is the last resort.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	a := &App{}

	var store httpapi.EquipmentStore
	if cfg.Storage.SQLitePath != "" {
		st, err := storage.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := st.EnsureSchema(ctx); err != nil {
			_ = st.Close()
			return nil, err
		}
		a.Store = st
		store = st
	}

	cat, source, err := a.loadCatalog(ctx, cfg.Catalog.Path)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	logger.Info("catalog loaded",
		zap.String("source", source),
		zap.Int("machines", len(cat.Machines)),
		zap.Int("grinders", len(cat.Grinders)),
		zap.Int("beans", len(cat.Beans)),
	)

	engineOpts := []matching.Option{matching.WithLogger(logger.Named("engine"))}
	serverOpts := []httpapi.Option{
		httpapi.WithLimits(cfg.Matching),
		httpapi.WithLogger(logger.Named("http")),
		httpapi.WithRateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst),
	}
	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New(true)
		engineOpts = append(engineOpts, matching.WithObserver(a.Metrics))
		serverOpts = append(serverOpts, httpapi.WithMetrics(a.Metrics))
	}

	a.Engine = matching.NewEngine(cat, engineOpts...)
	a.Server = httpapi.NewServer(a.Engine, store, serverOpts...)
	return a, nil
}

func (a *App) loadCatalog(ctx context.Context, path string) (domain.Catalog, string, error) {
	if path == "" && a.Store != nil {
		n, err := a.Store.CountBeans(ctx)
		if err != nil {
			return domain.Catalog{}, "", err
		}
		if n > 0 {
			cat, err := a.Store.LoadCatalog(ctx)
			if err != nil {
				return domain.Catalog{}, "", err
			}
			return cat, "sqlite", nil
		}
	}

	cat, err := catalog.Open(path)
	if err != nil {
		return domain.Catalog{}, "", fmt.Errorf("load catalog: %w", err)
	}
	if path == "" {
		return cat, "embedded", nil
	}
	return cat, path, nil
}

func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
