// Package app wires the gridkit components together and manages the
// application lifecycle for the demo frontend.
package app

import (
	"sync"

	"github.com/dshills/gridkit/internal/config"
	"github.com/dshills/gridkit/internal/engine"
	"github.com/dshills/gridkit/internal/integration/sysclip"
	"github.com/dshills/gridkit/internal/log"
	"github.com/dshills/gridkit/internal/tui"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Optional; missing
	// files fall back to defaults.
	ConfigPath string

	// Watch enables live reload of the configuration file.
	Watch bool

	// Debug forces debug-level logging regardless of configuration.
	Debug bool
}

// Application is the central coordinator: configuration, logger, clipboard,
// engine and the terminal view.
type Application struct {
	cfg     config.Config
	logger  *log.Logger
	eng     *engine.Engine
	view    *tui.View
	watcher *config.Watcher

	shutdownOnce sync.Once
}

// New creates the application from options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.Logging.Level)
	if opts.Debug {
		logCfg.Level = log.LevelDebug
	}
	logger := log.New(logCfg)

	var clip sysclip.Clipboard
	if cfg.Clipboard.System {
		clip = sysclip.Best()
	} else {
		clip = sysclip.NewMemory()
	}

	eng := engine.New(
		engine.WithSize(cfg.Grid.Rows, cfg.Grid.Cols),
		engine.WithMaxHistoryEntries(cfg.History.MaxEntries),
		engine.WithClipboard(clip),
		engine.WithLogger(logger.WithComponent("engine")),
	)

	view, err := tui.New(eng, logger.WithComponent("tui"))
	if err != nil {
		return nil, err
	}

	a := &Application{
		cfg:    cfg,
		logger: logger,
		eng:    eng,
		view:   view,
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, a.applyConfig,
			config.WithErrorHandler(func(err error) {
				logger.Warn("config reload failed: %v", err)
			}))
		if err != nil {
			logger.Warn("config watch unavailable: %v", err)
		} else {
			a.watcher = w
		}
	}

	return a, nil
}

// applyConfig applies the reloadable subset of a fresh configuration.
// Structural settings (grid size, history cap) only affect new sessions.
func (a *Application) applyConfig(cfg config.Config) {
	a.logger.SetLevel(log.ParseLevel(cfg.Logging.Level))
	a.logger.Info("configuration reloaded")
}

// Engine returns the grid engine.
func (a *Application) Engine() *engine.Engine {
	return a.eng
}

// Logger returns the application logger.
func (a *Application) Logger() *log.Logger {
	return a.logger
}

// Run starts the terminal view and blocks until quit.
func (a *Application) Run() error {
	a.logger.Info("starting %dx%d grid", a.eng.Rows(), a.eng.Cols())
	return a.view.Run()
}

// Shutdown stops the watcher and the view. Safe to call more than once.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watcher != nil {
			_ = a.watcher.Close()
		}
		a.view.Stop()
		a.logger.Info("shutdown complete")
	})
}
