package main

import (
	"fmt"
	"os"

	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/creator"
	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
	"github.com/tuanmanh1223/reel-forge/internal/narration"
	"github.com/tuanmanh1223/reel-forge/internal/producer"
	"github.com/tuanmanh1223/reel-forge/internal/recognizer"
	"github.com/tuanmanh1223/reel-forge/internal/report"
	"github.com/tuanmanh1223/reel-forge/internal/research"
	"github.com/tuanmanh1223/reel-forge/internal/script"
	"github.com/tuanmanh1223/reel-forge/internal/trends"
	"github.com/tuanmanh1223/reel-forge/pkg/executor"
)

// app holds the wired pipeline shared by the CLI commands.
type app struct {
	cfg     *config.Config
	logger  logger.Logger
	store   *jobstore.Store
	creator creator.Creator
}

// newApp loads configuration and wires every component.
func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var log logger.Logger
	if cfg.Paths.LogFile != "" {
		log = logger.NewWithFile(cfg.Logging.Level, cfg.Paths.LogFile)
	} else {
		log = logger.New(cfg.Logging.Level)
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}

	store, err := jobstore.Open(cfg.Paths.Database)
	if err != nil {
		return nil, fmt.Errorf("open job store: %w", err)
	}

	exec := executor.New()
	syn := narration.New(cfg.TTS, exec, log)
	rec := recognizer.New(cfg.Recognizer, exec, log)
	prod := producer.New(cfg, exec, log, syn, rec)
	gen := script.New(cfg.LLM, cfg.Video, log)
	tr := trends.New(log)
	res := research.New(exec, log)
	rep := report.New(log)

	c := creator.New(cfg, log, store, tr, res, gen, prod, rep)

	return &app{
		cfg:     cfg,
		logger:  log,
		store:   store,
		creator: c,
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close job store: %v\n", err)
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Templates,
		cfg.Paths.Music,
		cfg.Paths.Scripts,
		cfg.Paths.Audio,
		cfg.Paths.Output,
		cfg.Paths.Reports,
		cfg.Paths.Temp,
		cfg.Paths.Inbox,
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
