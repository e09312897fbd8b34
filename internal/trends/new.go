package trends

import (
	"net/http"
	"time"

	"github.com/tuanmanh1223/reel-forge/internal/logger"
)

const defaultSearchURL = "https://html.duckduckgo.com/html/"

type implAnalyzer struct {
	searchURL string
	client    *http.Client
	logger    logger.Logger
}

// New creates a new Analyzer instance
func New(log logger.Logger) Analyzer {
	return &implAnalyzer{
		searchURL: defaultSearchURL,
		client:    &http.Client{Timeout: 20 * time.Second},
		logger:    log,
	}
}
