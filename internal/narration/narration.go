package narration

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrEmptyScript indicates no speakable text remained after cleaning.
var ErrEmptyScript = errors.New("no valid text for narration after cleaning")

// minAudioSize guards against the synthesizer writing an empty or header-only
// file and still exiting zero.
const minAudioSize = 1000

var (
	reEmoji  = regexp.MustCompile(`[🔥😱🤯🚀💥⚡🌟✨💯🎯⏳✊🌱➡️📚#🌍🤫]`)
	reSymbol = regexp.MustCompile(`[^\w\s.,!?-]`)
)

// CleanScript strips emojis and non-speakable symbols so the synthesizer
// reads only the spoken words.
func CleanScript(text string) string {
	text = reEmoji.ReplaceAllString(text, "")
	text = reSymbol.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Synthesize narrates the script to outputPath using the external TTS tool
// with a randomly picked voice.
func (s *implSynthesizer) Synthesize(ctx context.Context, scriptText, outputPath string) error {
	text := CleanScript(scriptText)
	if text == "" {
		return ErrEmptyScript
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create audio dir: %w", err)
	}

	voice := s.cfg.Voices[rand.Intn(len(s.cfg.Voices))]
	s.logger.Info(ctx, "Synthesizing narration with voice %s (%d chars)", voice, len(text))

	args := []string{
		"--voice", voice,
		"--rate=" + s.cfg.Rate,
		"--text", text,
		"--write-media", outputPath,
	}

	if _, err := s.executor.Execute(ctx, s.cfg.BinaryPath, args...); err != nil {
		return fmt.Errorf("tts synthesis: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() <= minAudioSize {
		return fmt.Errorf("tts produced no usable audio at %s", outputPath)
	}

	s.logger.Info(ctx, "Narration ready: %s (%d bytes)", outputPath, info.Size())
	return nil
}
