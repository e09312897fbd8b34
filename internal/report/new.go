package report

import (
	"github.com/tuanmanh1223/reel-forge/internal/logger"
)

type implWriter struct {
	logger logger.Logger
}

// New creates a Writer that renders production briefs as docx documents.
func New(log logger.Logger) Writer {
	return &implWriter{logger: log}
}
