package producer

import (
	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
	"github.com/tuanmanh1223/reel-forge/internal/narration"
	"github.com/tuanmanh1223/reel-forge/internal/recognizer"
	"github.com/tuanmanh1223/reel-forge/pkg/executor"
)

type implProducer struct {
	cfg         *config.Config
	executor    executor.Executor
	logger      logger.Logger
	synthesizer narration.Synthesizer
	recognizer  recognizer.Recognizer
}

// New creates a new Producer instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger,
	syn narration.Synthesizer, rec recognizer.Recognizer) Producer {
	return &implProducer{
		cfg:         cfg,
		executor:    exec,
		logger:      log,
		synthesizer: syn,
		recognizer:  rec,
	}
}
