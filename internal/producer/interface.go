package producer

import (
	"context"

	"github.com/tuanmanh1223/reel-forge/internal/config"
)

// Producer turns a finished narration script into a composed video with
// burned-in captions and background music.
type Producer interface {
	// Produce runs the full production sequence for one job and returns the
	// path of the final video.
	Produce(ctx context.Context, sess config.Session, scriptText string) (string, error)
}
