package narration

import "context"

// Synthesizer turns script text into narration audio on disk
type Synthesizer interface {
	Synthesize(ctx context.Context, scriptText, outputPath string) error
}
