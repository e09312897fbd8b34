package producer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/subtitle"
	"github.com/tuanmanh1223/reel-forge/pkg/executor"
)

const (
	// workingCopyName is the short subtitle file name handed to the
	// compositor. It is always relative to a per-job scratch directory, so
	// concurrent jobs never collide and the ffmpeg filter argument needs no
	// path escaping.
	workingCopyName = "subs.srt"

	subtitleStyle = "Fontsize=24,Bold=0,Outline=3,Shadow=2,Alignment=2," +
		"PrimaryColour=&H0000FFFF,OutlineColour=&H00000000,MarginV=80"

	stderrExcerptLen = 200
)

// compose burns the captions into the template video and muxes the
// narration audio, producing the session's output video. The caption
// working copy lives in a scratch directory that is removed on every path.
func (p *implProducer) compose(ctx context.Context, sess config.Session, doc subtitle.Document, templatePath, narrationPath string) (string, error) {
	workDir, err := os.MkdirTemp(sess.TempDir(), "subs-")
	if err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	defer p.removeScratch(ctx, workDir)

	if err := doc.Write(filepath.Join(workDir, workingCopyName)); err != nil {
		return "", fmt.Errorf("write caption working copy: %w", err)
	}

	outputPath := sess.VideoPath()
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	absTemplate, _ := filepath.Abs(templatePath)
	absNarration, _ := filepath.Abs(narrationPath)
	absOutput, _ := filepath.Abs(outputPath)

	args := []string{
		"-y",
		"-i", absTemplate,
		"-i", absNarration,
		"-vf", fmt.Sprintf("subtitles=%s:force_style='%s'", workingCopyName, subtitleStyle),
		"-c:v", p.cfg.FFmpeg.Encoder,
		"-map", "0:v",
		"-map", "1:a",
		"-preset", p.cfg.FFmpeg.Preset,
		"-shortest",
		absOutput,
	}

	p.logger.Info(ctx, "Composing video: %s + %s -> %s", templatePath, narrationPath, outputPath)

	composeCtx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.FFmpeg.ComposeTimeout)*time.Second)
	defer cancel()

	if _, err := p.executor.ExecuteInDir(composeCtx, workDir, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("%w: %s", ErrCompositor, diagnose(err))
	}

	if _, err := os.Stat(absOutput); err != nil {
		return "", fmt.Errorf("%w: compositor exited cleanly but produced no output file", ErrCompositor)
	}

	return outputPath, nil
}

// removeScratch deletes the working caption directory. Failure is logged
// but never escalated to a job failure.
func (p *implProducer) removeScratch(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to remove scratch dir %s: %v", dir, err)
	}
}

// diagnose extracts a bounded excerpt of the failing tool's stderr for
// operator triage.
func diagnose(err error) string {
	var cmdErr *executor.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.StderrExcerpt(stderrExcerptLen)
	}
	return err.Error()
}
