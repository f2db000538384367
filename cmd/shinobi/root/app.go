package root

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shinobi/internal/config"
	"shinobi/internal/game"
	"shinobi/internal/store"
)

// app wires the config, store, engine, and achievement tracker for one
// command invocation. State is loaded up front and saved explicitly by the
// commands that mutate it.
type app struct {
	cfg     config.Config
	db      *sql.DB
	store   *store.Store
	engine  *game.Engine
	tracker *game.Tracker
}

func openApp(ctx context.Context, onUnlock func(game.Achievement)) (*app, func(), error) {
	cfgPath := flagConfig
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	// --verbose wins over the config file.
	if !flagVerbose {
		if lvl, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
			logLevel.SetLevel(lvl)
		}
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	path, err := store.ResolveDBPath(dbPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := store.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	st := store.New(db, log)

	catalog, err := cfg.MissionCatalog()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	eng, err := st.LoadEngine(ctx, catalog)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	tracker, err := st.LoadTracker(ctx, onUnlock)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &app{cfg: cfg, db: db, store: st, engine: eng, tracker: tracker}, cleanup, nil
}

// saveProgress persists the engine snapshot and achievement unlocks together.
func (a *app) saveProgress(ctx context.Context) error {
	return a.store.SaveProgress(ctx, a.engine.Snapshot(), a.tracker.Snapshot())
}
