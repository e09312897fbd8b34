package report

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/script"
)

// Write renders the production brief for a finished job: the generated
// script with its production metadata, followed by a clean caption
// transcript recovered from the job's SRT file.
func (w *implWriter) Write(ctx context.Context, sess config.Session, scr *script.Script) error {
	w.logger.Info(ctx, "Writing production report for job %s", sess.ID)

	markdown := buildMarkdown(scr)

	transcript := ""
	if data, err := os.ReadFile(sess.CaptionPath()); err == nil {
		transcript = stripCues(string(data))
	} else {
		w.logger.Warn(ctx, "No caption file for transcript section: %v", err)
	}

	outputPath := sess.ReportPath()
	if err := renderDocx("Production Report: "+sess.Topic, markdown, transcript, outputPath); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	w.logger.Info(ctx, "Report saved: %s", outputPath)
	return nil
}

func buildMarkdown(scr *script.Script) string {
	var b strings.Builder

	b.WriteString("## Script\n")
	if scr.Hook != "" {
		b.WriteString(fmt.Sprintf("**Hook:** %s\n", scr.Hook))
	}
	b.WriteString(scr.ScriptText + "\n")
	if scr.CTA != "" {
		b.WriteString(fmt.Sprintf("**Call to action:** %s\n", scr.CTA))
	}

	if len(scr.MainPoints) > 0 {
		b.WriteString("## Main Points\n")
		for _, p := range scr.MainPoints {
			b.WriteString("- " + p + "\n")
		}
	}

	b.WriteString("## Production\n")
	b.WriteString(fmt.Sprintf("- Video length: %d seconds\n", scr.VideoLength))
	if scr.EstimatedWords > 0 {
		b.WriteString(fmt.Sprintf("- Estimated words: %d\n", scr.EstimatedWords))
	}
	if scr.ToneApplied != "" {
		b.WriteString("- Tone: " + scr.ToneApplied + "\n")
	}
	if scr.ContentType != "" {
		b.WriteString("- Content type: " + scr.ContentType + "\n")
	}
	if len(scr.TrendingElements) > 0 {
		b.WriteString("- Trending elements: " + strings.Join(scr.TrendingElements, ", ") + "\n")
	}

	return b.String()
}
