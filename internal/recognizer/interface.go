package recognizer

import (
	"context"

	"github.com/tuanmanh1223/reel-forge/internal/subtitle"
)

// Recognizer produces ordered word-level timestamps from a narration audio
// file.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) ([]subtitle.TimedWord, error)
}
