package recognizer

import (
	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
	"github.com/tuanmanh1223/reel-forge/pkg/executor"
)

type implRecognizer struct {
	cfg      config.RecognizerConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Recognizer instance
func New(cfg config.RecognizerConfig, exec executor.Executor, log logger.Logger) Recognizer {
	return &implRecognizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
