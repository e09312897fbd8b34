package research

import (
	"net/http"
	"time"

	"github.com/tuanmanh1223/reel-forge/internal/logger"
	"github.com/tuanmanh1223/reel-forge/pkg/executor"
)

const defaultArxivURL = "http://export.arxiv.org/api/query"

type implResearcher struct {
	arxivURL string
	client   *http.Client
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Researcher instance
func New(exec executor.Executor, log logger.Logger) Researcher {
	return &implResearcher{
		arxivURL: defaultArxivURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		executor: exec,
		logger:   log,
	}
}
