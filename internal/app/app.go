package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"pomoglass/internal/bridge"
	"pomoglass/internal/engine"
	"pomoglass/internal/history"
	"pomoglass/internal/stats"
	"pomoglass/internal/telemetry"
)

const (
	statsFileName   = "pomodoro_data.json"
	historyFileName = "history.db"
)

// App owns the wiring: storage, telemetry, and the session engine.
type App struct {
	cfg Config

	logger  *telemetry.Logger
	stats   *stats.JSONStore
	history *history.SQLiteStore
	engine  *engine.Engine
}

// New builds the app from a validated config. It creates the data
// directory, opens the stores, and seeds the engine with the configured
// preset and duration overrides.
func New(cfg Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	logger, err := telemetry.NewLogger(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	ledger, err := history.NewSQLite(filepath.Join(cfg.DataDir, historyFileName))
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("open history: %w", err)
	}
	if err := ledger.EnsureSchema(context.Background()); err != nil {
		_ = ledger.Close()
		_ = logger.Close()
		return nil, err
	}

	statsStore := stats.NewJSONStore(filepath.Join(cfg.DataDir, statsFileName))
	eng := engine.New(statsStore, ledger, logger, engine.Options{})

	if cfg.Preset != "" && cfg.Preset != engine.PresetCustom {
		eng.ApplyPreset(cfg.Preset)
	}
	eng.UpdateDurations(cfg.Durations.Overrides())

	logger.Info("app started", map[string]any{
		"data_dir": cfg.DataDir,
		"preset":   cfg.Preset,
	})

	return &App{
		cfg:     cfg,
		logger:  logger,
		stats:   statsStore,
		history: ledger,
		engine:  eng,
	}, nil
}

func (a *App) Engine() *engine.Engine { return a.engine }

func (a *App) History() history.Store { return a.history }

func (a *App) Logger() *telemetry.Logger { return a.logger }

// RunBridge runs the JSON command loop until the input closes or the
// context is cancelled. The tick loop runs for the whole session.
func (a *App) RunBridge(ctx context.Context, in io.Reader, out io.Writer) error {
	a.engine.Run()
	defer a.engine.Stop()

	handler := bridge.NewHandler(a.engine, a.logger)
	return handler.Serve(ctx, in, out)
}

func (a *App) Close() error {
	a.engine.Stop()
	err := a.history.Close()
	if logErr := a.logger.Close(); err == nil {
		err = logErr
	}
	return err
}
