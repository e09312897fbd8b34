package narration

import (
	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
	"github.com/tuanmanh1223/reel-forge/pkg/executor"
)

type implSynthesizer struct {
	cfg      config.TTSConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Synthesizer instance
func New(cfg config.TTSConfig, exec executor.Executor, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
