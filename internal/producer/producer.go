package producer

import (
	"context"
	"fmt"
	"time"

	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/subtitle"
)

// Produce runs the production pipeline for one job, strictly sequentially:
// narration synthesis, template selection, word recognition, caption
// chunking and persistence, subtitle burn with narration mux, then
// background music. The first failing stage aborts the job.
func (p *implProducer) Produce(ctx context.Context, sess config.Session, scriptText string) (string, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting video production for job %s", sess.ID)

	narrationPath := sess.NarrationPath()
	if err := p.synthesizer.Synthesize(ctx, scriptText, narrationPath); err != nil {
		return "", fmt.Errorf("create narration: %w", err)
	}

	templatePath, err := p.selectTemplate()
	if err != nil {
		return "", fmt.Errorf("select template: %w", err)
	}
	p.logger.Info(ctx, "Selected template: %s", templatePath)

	words, err := p.recognizer.Recognize(ctx, narrationPath)
	if err != nil {
		return "", fmt.Errorf("recognize narration: %w", err)
	}
	if len(words) == 0 {
		return "", ErrNoTimingData
	}

	doc := subtitle.NewDocument(subtitle.ChunkWords(words))
	p.logger.Info(ctx, "Built %d caption cues from %d words", len(doc.Cues), len(words))

	if err := doc.Write(sess.CaptionPath()); err != nil {
		return "", fmt.Errorf("persist captions: %w", err)
	}

	videoPath, err := p.compose(ctx, sess, doc, templatePath, narrationPath)
	if err != nil {
		return "", err
	}

	finalPath := p.addMusic(ctx, videoPath)

	p.logger.Info(ctx, "Production completed in %s: %s", time.Since(startTime), finalPath)
	return finalPath, nil
}
