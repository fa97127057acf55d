package main

import (
	"fmt"

	"github.com/configo-dev/configo/internal/backend"
	"github.com/configo-dev/configo/internal/config"
	"github.com/configo-dev/configo/internal/exec"
	"github.com/configo-dev/configo/internal/memory"
	"github.com/configo-dev/configo/internal/portal"
	"github.com/configo-dev/configo/internal/scan"
	"github.com/configo-dev/configo/internal/state"
	"github.com/configo-dev/configo/internal/sysinfo"
	"github.com/configo-dev/configo/internal/validate"
)

// appDeps bundles the shared dependencies the commands build on. The
// bridge is constructed exactly once here; capability bindings never
// change afterwards.
type appDeps struct {
	cfg     *config.Config
	runner  *exec.ExecRunner
	store   *memory.Store
	bridge  *backend.Bridge
	portals *portal.Orchestrator
}

// buildDeps loads config and wires the runner, memory store, portal
// orchestrator, and backend bridge.
func buildDeps() (*appDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	runner := exec.NewRunnerWithGrace(cfg.Timeouts.KillGrace)

	memPath := cfg.Memory.Path
	if memPath == "" {
		memPath = config.DefaultMemoryPath()
	}
	store, err := memory.Open(memPath)
	if err != nil {
		return nil, fmt.Errorf("opening memory store: %w", err)
	}

	bridge := backend.New(backend.Options{
		Config:    cfg,
		Runner:    runner,
		Inspector: sysinfo.New(runner),
		Scanner:   scan.New(),
		Validator: validate.New(runner),
	})

	return &appDeps{
		cfg:     cfg,
		runner:  runner,
		store:   store,
		bridge:  bridge,
		portals: portal.New(runner, store),
	}, nil
}

// openStateDB opens the run-history database and applies migrations.
func openStateDB() (*state.DB, error) {
	db, err := state.Open(config.DefaultStateDBPath())
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating state database: %w", err)
	}
	return db, nil
}
