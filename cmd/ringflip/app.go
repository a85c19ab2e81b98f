package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/games/ringflip"
	"github.com/vovakirdan/ringflip/internal/ledger"
	"github.com/vovakirdan/ringflip/internal/logging"
	"github.com/vovakirdan/ringflip/internal/registry"
	"github.com/vovakirdan/ringflip/internal/storage"
)

// defaultTUILog keeps log lines off the alternate screen during local play.
const defaultTUILog = "~/.ringflip/ringflip.log"

// app holds what every command shares: settings, logger and persistence.
type app struct {
	env     config.Env
	cfg     config.RingflipConfig
	level   config.DifficultyLevel
	logger  *log.Logger
	logFile *os.File
	store   *storage.Store
	ledger  *ledger.Ledger
}

// setup resolves settings and opens the store. fallbackLog is used when
// neither --log-file nor RINGFLIP_LOG_FILE is set; empty means stderr.
func setup(fallbackLog, difficulty string) (*app, error) {
	env, envErr := config.LoadEnv()

	a := &app{env: env}
	if err := a.openLogger(fallbackLog); err != nil {
		return nil, err
	}
	if envErr != nil {
		a.logger.Warn("ignoring .env", "error", envErr)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		a.logger.Warn("using default game config", "error", err)
	}
	a.cfg = cfg

	a.level = config.Medium
	if name := config.Or(difficulty, env.Difficulty); name != "" {
		lv, err := config.ParseLevel(name)
		if err != nil {
			a.logger.Warn("unknown difficulty, using Medium", "difficulty", name)
		} else {
			a.level = lv
		}
	}

	dbPath := config.Or(flagDBPath, config.Or(env.DBPath, storage.DefaultPath))
	store, err := storage.Open(dbPath, a.logger.WithPrefix("storage"))
	if err != nil {
		a.logger.Warn("scores database unavailable, bests will not be kept", "path", dbPath, "error", err)
	} else {
		a.store = store
		a.ledger = ledger.New(store, ledger.WithLogger(a.logger.WithPrefix("ledger")))
	}
	return a, nil
}

func (a *app) openLogger(fallback string) error {
	level := config.Or(flagLogLevel, config.Or(a.env.LogLevel, "info"))
	path := config.Or(flagLogFile, config.Or(a.env.LogFile, fallback))

	var w io.Writer = os.Stderr
	if path != "" {
		f, err := logging.OpenFile(path)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		a.logFile = f
		w = f
	}
	a.logger = logging.New(w, level, "ringflip")
	return nil
}

// deps returns the collaborators for one game instance.
func (a *app) deps(logger *log.Logger) registry.Deps {
	return registry.Deps{
		Config:     a.cfg,
		Difficulty: a.level,
		Ledger:     a.ledger,
		Logger:     logger,
	}
}

// newGame creates a ring game instance.
func (a *app) newGame(logger *log.Logger) (registry.Game, error) {
	return registry.Create(ringflip.ID, a.deps(logger))
}

// Close releases the store and the log file.
func (a *app) Close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("cannot close store", "error", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
