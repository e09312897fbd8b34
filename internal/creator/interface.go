package creator

import "context"

// Options are the per-job knobs taken from the API request or inbox file.
type Options struct {
	Topic   string
	Tone    float64
	PDFPath string
}

// Creator runs one video creation job end to end, recording progress in the
// job store and publishing events for live observers.
type Creator interface {
	// Create runs the job and returns the final video path.
	Create(ctx context.Context, jobID string, opts Options) (string, error)
	// Events exposes the live progress feed.
	Events() *Hub
}
