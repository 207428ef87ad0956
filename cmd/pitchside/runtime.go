package main

import (
	"context"
	"fmt"

	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/function/builtin"
	"github.com/pitchside/pitchside/internal/model"
	"github.com/pitchside/pitchside/internal/orchestrator"
	"github.com/pitchside/pitchside/internal/store"
)

// runtimeComponents wires the store, registry, router and orchestrator for
// one process. Catalog and registry are immutable after this point.
type runtimeComponents struct {
	db   *store.DB
	orch *orchestrator.Orchestrator
}

func buildRuntime(ctx context.Context, cfg *config.Config) (*runtimeComponents, error) {
	db, err := store.Open(ctx, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if cfg.Store.Seed {
		if err := db.Seed(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}

	catalog, err := function.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		db.Close()
		return nil, err
	}

	registry := function.NewRegistry()
	if err := builtin.Bind(registry, catalog, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("bind function catalog: %w", err)
	}

	router, err := model.NewRouter(cfg.Models)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("configure models: %w", err)
	}

	storeTimeout, err := config.DurationOrDefault(cfg.Orchestrator.StoreTimeout, config.DefaultStoreQueryTimeout)
	if err != nil {
		db.Close()
		return nil, err
	}

	orch := orchestrator.New(registry, router, orchestrator.Options{
		Model:                  cfg.Models.Default,
		SystemPrompt:           cfg.Orchestrator.SystemPrompt,
		StoreTimeout:           storeTimeout,
		MaxCorrectiveReprompts: cfg.Orchestrator.MaxCorrectiveReprompts,
	})

	return &runtimeComponents{db: db, orch: orch}, nil
}

func (r *runtimeComponents) Close() error {
	return r.db.Close()
}
