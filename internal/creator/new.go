package creator

import (
	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
	"github.com/tuanmanh1223/reel-forge/internal/producer"
	"github.com/tuanmanh1223/reel-forge/internal/report"
	"github.com/tuanmanh1223/reel-forge/internal/research"
	"github.com/tuanmanh1223/reel-forge/internal/script"
	"github.com/tuanmanh1223/reel-forge/internal/trends"
)

type implCreator struct {
	cfg      *config.Config
	logger   logger.Logger
	store    *jobstore.Store
	trends   trends.Analyzer
	research research.Researcher
	scripts  script.Generator
	producer producer.Producer
	reports  report.Writer
	events   *Hub
	sem      *semaphore
}

// New creates a Creator wiring the full production pipeline. Concurrent
// jobs are bounded by cfg.Performance.MaxConcurrent.
func New(cfg *config.Config, log logger.Logger, store *jobstore.Store,
	tr trends.Analyzer, res research.Researcher, gen script.Generator,
	prod producer.Producer, rep report.Writer) Creator {
	capacity := cfg.Performance.MaxConcurrent
	if capacity < 1 {
		capacity = 1
	}
	return &implCreator{
		cfg:      cfg,
		logger:   log,
		store:    store,
		trends:   tr,
		research: res,
		scripts:  gen,
		producer: prod,
		reports:  rep,
		events:   NewHub(),
		sem:      newSemaphore(capacity),
	}
}

func (c *implCreator) Events() *Hub {
	return c.events
}
