package config

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	reUnsafe   = regexp.MustCompile(`[^\w\s-]`)
	reCollapse = regexp.MustCompile(`[-\s]+`)
)

// Session carries the per-job identity and every file path derived from it.
// Each pipeline run gets its own Session so concurrent jobs never collide
// on the filesystem.
type Session struct {
	ID    string
	Topic string
	name  string
	paths PathsConfig
}

// NewSession derives a session from the job topic. The file name stem is a
// sanitized topic slug plus a short unique suffix.
func NewSession(topic string, paths PathsConfig) Session {
	slug := reUnsafe.ReplaceAllString(topic, "")
	slug = strings.TrimSpace(slug)
	slug = reCollapse.ReplaceAllString(slug, "_")
	if len(slug) > 30 {
		slug = slug[:30]
	}
	if slug == "" {
		slug = "job"
	}

	id := uuid.NewString()
	return Session{
		ID:    id,
		Topic: topic,
		name:  slug + "_" + id[:8],
		paths: paths,
	}
}

// CaptionPath is the permanent caption file for this job
func (s Session) CaptionPath() string {
	return filepath.Join(s.paths.Scripts, s.name+"_script.srt")
}

// NarrationPath is the synthesized narration audio for this job
func (s Session) NarrationPath() string {
	return filepath.Join(s.paths.Audio, s.name+"_narration.mp3")
}

// VideoPath is the final composed video for this job
func (s Session) VideoPath() string {
	return filepath.Join(s.paths.Output, s.name+"_reel.mp4")
}

// ReportPath is the production report document for this job
func (s Session) ReportPath() string {
	return filepath.Join(s.paths.Reports, s.name+"_report.docx")
}

// TempDir is the root under which this job creates scratch directories
func (s Session) TempDir() string {
	return s.paths.Temp
}
