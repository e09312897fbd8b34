package script

import (
	"sync/atomic"

	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
)

type implGenerator struct {
	apiKeys []string
	// currentKey is shared across jobs running concurrently, so key
	// rotation goes through atomic ops.
	currentKey atomic.Int64
	model      string
	minLength  int
	maxLength  int
	logger     logger.Logger
}

// New creates a Generator that rotates through the supplied Gemini API keys.
func New(llm config.LLMConfig, video config.VideoConfig, log logger.Logger) Generator {
	return &implGenerator{
		apiKeys:   llm.APIKeys,
		model:     llm.Model,
		minLength: video.MinLength,
		maxLength: video.MaxLength,
		logger:    log,
	}
}
