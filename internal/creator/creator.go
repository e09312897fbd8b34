package creator

import (
	"context"
	"fmt"
	"time"

	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
	"github.com/tuanmanh1223/reel-forge/internal/script"
)

// Create runs one job end to end: trend lookup, optional document
// research, script generation, video production and the final report.
// Trend lookup and the report are best-effort; every other stage failure
// fails the job.
func (c *implCreator) Create(ctx context.Context, jobID string, opts Options) (string, error) {
	if err := c.sem.acquire(ctx); err != nil {
		return "", fmt.Errorf("acquire job slot: %w", err)
	}
	defer c.sem.release()

	startTime := time.Now()
	c.logger.Info(ctx, "========================================")
	c.logger.Info(ctx, "Starting job %s: %s", jobID, opts.Topic)
	c.logger.Info(ctx, "========================================")

	videoPath, err := c.run(ctx, jobID, opts)
	if err != nil {
		c.fail(ctx, jobID, err)
		return "", err
	}

	if dbErr := c.store.Complete(ctx, jobID, videoPath); dbErr != nil {
		c.logger.Warn(ctx, "Failed to record completion for job %s: %v", jobID, dbErr)
	}
	c.events.Publish(Event{
		JobID:    jobID,
		Stage:    "completed",
		Progress: 100,
		Message:  videoPath,
		Status:   string(jobstore.StatusCompleted),
	})

	c.logger.Info(ctx, "Job %s completed in %s: %s", jobID, time.Since(startTime), videoPath)
	return videoPath, nil
}

func (c *implCreator) run(ctx context.Context, jobID string, opts Options) (string, error) {
	req := script.Request{
		Topic: opts.Topic,
		Tone:  opts.Tone,
	}

	c.step(ctx, jobID, "analyzing trends", 10)
	if trendReport, err := c.trends.Analyze(ctx, opts.Topic); err != nil {
		c.logger.Warn(ctx, "Trend analysis failed, continuing without: %v", err)
	} else {
		req.Trends = trendReport.TrendingTopics
		req.Keywords = trendReport.RecommendedKeywords
	}

	if opts.PDFPath != "" {
		c.step(ctx, jobID, "researching document", 20)
		content, err := c.research.ExtractPDF(ctx, opts.PDFPath)
		if err != nil {
			return "", fmt.Errorf("extract document: %w", err)
		}
		req.PDFMode = true
		req.PDFContent = content

		// Papers carrying an arXiv id get the official abstract as an
		// extra insight. Best-effort; most PDFs have none.
		if paper, err := c.research.LookupArxiv(ctx, arxivProbe(opts.PDFPath, content)); err == nil {
			req.MainInsights = append(req.MainInsights, paper.Summary)
		}
	}

	c.step(ctx, jobID, "generating script", 35)
	scr, err := c.scripts.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate script: %w", err)
	}

	c.step(ctx, jobID, "producing video", 60)
	sess := config.NewSession(opts.Topic, c.cfg.Paths)
	videoPath, err := c.producer.Produce(ctx, sess, scr.ScriptText)
	if err != nil {
		return "", fmt.Errorf("produce video: %w", err)
	}

	c.step(ctx, jobID, "writing report", 90)
	if err := c.reports.Write(ctx, sess, scr); err != nil {
		c.logger.Warn(ctx, "Report generation failed, keeping video: %v", err)
	}

	return videoPath, nil
}

// arxivProbe is the text searched for an arXiv identifier: the source path
// itself plus the leading slice of the extracted text, where papers print
// their id.
func arxivProbe(source, content string) string {
	if len(content) > 500 {
		content = content[:500]
	}
	return source + " " + content
}

// step records stage progress in the store and notifies live observers.
func (c *implCreator) step(ctx context.Context, jobID, stage string, progress int) {
	c.logger.Info(ctx, "Job %s: %s (%d%%)", jobID, stage, progress)
	if err := c.store.SetProgress(ctx, jobID, stage, progress); err != nil {
		c.logger.Warn(ctx, "Failed to record progress for job %s: %v", jobID, err)
	}
	c.events.Publish(Event{
		JobID:    jobID,
		Stage:    stage,
		Progress: progress,
		Status:   string(jobstore.StatusRunning),
	})
}

func (c *implCreator) fail(ctx context.Context, jobID string, err error) {
	c.logger.Error(ctx, "Job %s failed: %v", jobID, err)
	if dbErr := c.store.Fail(ctx, jobID, err.Error()); dbErr != nil {
		c.logger.Warn(ctx, "Failed to record failure for job %s: %v", jobID, dbErr)
	}
	c.events.Publish(Event{
		JobID:   jobID,
		Stage:   "failed",
		Message: err.Error(),
		Status:  string(jobstore.StatusFailed),
	})
}
