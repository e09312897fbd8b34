package recognizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tuanmanh1223/reel-forge/internal/subtitle"
)

// ErrResample indicates the audio could not be converted to the PCM format
// the recognizer expects. Recognition never starts when this is returned.
var ErrResample = errors.New("audio resampling failed")

// decodeResult is one JSON object from the recognizer's stdout stream.
// Partial objects carry in-progress text only; flushed objects carry the
// timed words accumulated since the previous flush.
type decodeResult struct {
	Partial string               `json:"partial"`
	Words   []subtitle.TimedWord `json:"result"`
	Text    string               `json:"text"`
}

// Recognize converts the narration audio to mono 16-bit PCM, runs the
// external word recognizer over it and collects every timed word from the
// streaming results and the final flush, in emission order.
func (r *implRecognizer) Recognize(ctx context.Context, audioPath string) ([]subtitle.TimedWord, error) {
	wavPath, err := r.resample(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResample, err)
	}
	defer r.removeTemp(ctx, wavPath)

	r.logger.Info(ctx, "Decoding word timestamps: %s", wavPath)

	args := []string{
		"--model", r.cfg.ModelPath,
		"--sample-rate", strconv.Itoa(r.cfg.SampleRate),
		"--words",
		wavPath,
	}

	out, err := r.executor.Execute(ctx, r.cfg.BinaryPath, args...)
	if err != nil {
		return nil, fmt.Errorf("recognizer decode: %w", err)
	}

	words, err := parseStream(strings.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("parse recognizer output: %w", err)
	}

	r.logger.Info(ctx, "Recognizer produced %d timed words", len(words))
	return words, nil
}

// resample converts the narration audio to a mono fixed-rate WAV file next
// to the source, for the recognizer to consume.
func (r *implRecognizer) resample(ctx context.Context, audioPath string) (string, error) {
	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_pcm.wav"

	r.logger.Info(ctx, "Resampling audio for recognition: %s", audioPath)

	args := []string{
		"-y",
		"-i", audioPath,
		"-ar", strconv.Itoa(r.cfg.SampleRate),
		"-ac", "1",
		"-f", "wav",
		wavPath,
	}

	if _, err := r.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg resample: %w", err)
	}

	return wavPath, nil
}

func (r *implRecognizer) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		r.logger.Warn(ctx, "Failed to remove resampled audio %s: %v", path, err)
	}
}

// parseStream reads the recognizer's stdout: a sequence of JSON objects,
// streaming partial results followed by one final flush. Partials carry no
// timing and are skipped; every flushed result contributes its words in
// order.
func parseStream(r io.Reader) ([]subtitle.TimedWord, error) {
	dec := json.NewDecoder(r)

	var words []subtitle.TimedWord
	for {
		var res decodeResult
		if err := dec.Decode(&res); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		words = append(words, res.Words...)
	}

	return words, nil
}
