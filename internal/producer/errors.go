package producer

import "errors"

var (
	// ErrNoTimingData indicates the recognizer produced zero timed words,
	// usually silent or corrupted narration audio. Fatal for the job.
	ErrNoTimingData = errors.New("recognizer produced no usable timing data")

	// ErrCompositor indicates the external compositor exited non-zero or did
	// not produce the expected output file.
	ErrCompositor = errors.New("video composition failed")
)
