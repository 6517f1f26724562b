package container

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tribunal/adapters/llm"
	"tribunal/adapters/notify"
	"tribunal/adapters/postgres"
	"tribunal/app"
	"tribunal/internal"
	"tribunal/internal/config"
	"tribunal/ports"
)

// Container holds all application dependencies and manages their wiring.
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	DB    *sqlx.DB
	Store ports.RecordStore

	// Collaborators
	Narrator ports.Narrator
	Notifier ports.Notifier

	// Services
	DocProd    *app.DocProdService
	Timetable  *app.TimetableService
	Costs      *app.CostService
	Allocation *app.AllocationService
}

// New wires the full dependency graph over an open database handle.
func New(ctx context.Context, cfg *config.Config, db *sqlx.DB) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}

	logger := internal.NewDefaultLogger()

	store := postgres.NewRecordStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	narrator := llm.NewNarratorAdapter(llm.Config{
		Model:       cfg.AI.Model,
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
		Timeout:     cfg.AI.Timeout,
	})
	if cfg.AI.Enabled() {
		logger.Info("generative narrative service enabled (model %s)", cfg.AI.Model)
	} else {
		logger.Info("no generative narrative service configured; deterministic template only")
	}

	notifier := notify.NewLogDispatcher(logger)

	return &Container{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Store:      store,
		Narrator:   narrator,
		Notifier:   notifier,
		DocProd:    app.NewDocProdService(store),
		Timetable:  app.NewTimetableService(store, notifier),
		Costs:      app.NewCostService(store),
		Allocation: app.NewAllocationService(store, narrator),
	}, nil
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
