package producer

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var musicExtensions = []string{".mp3", ".wav", ".m4a", ".ogg"}

const mixFilter = "[1:a]volume=0.2[music];[0:a][music]amix=inputs=2:duration=shortest[out]"

// addMusic overlays a random background track on the composed video.
// Music is an enhancement: when no track is available or mixing fails, the
// un-musicked video is returned and the problem is logged.
func (p *implProducer) addMusic(ctx context.Context, videoPath string) string {
	musicPath, err := p.selectMusic()
	if err != nil {
		p.logger.Warn(ctx, "Skipping background music: %v", err)
		return videoPath
	}

	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	outputPath := filepath.Join(filepath.Dir(videoPath), base+"_with_music.mp4")

	p.logger.Info(ctx, "Adding background music: %s", musicPath)

	args := []string{
		"-y",
		"-i", videoPath,
		"-i", musicPath,
		"-filter_complex", mixFilter,
		"-map", "0:v",
		"-map", "[out]",
		"-c:v", "copy",
		"-c:a", "aac",
		"-shortest",
		outputPath,
	}

	mixCtx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.FFmpeg.ComposeTimeout)*time.Second)
	defer cancel()

	if _, err := p.executor.Execute(mixCtx, "ffmpeg", args...); err != nil {
		p.logger.Warn(ctx, "Music mix failed, keeping plain video: %s", diagnose(err))
		return videoPath
	}

	if _, err := os.Stat(outputPath); err != nil {
		p.logger.Warn(ctx, "Music mix produced no output, keeping plain video")
		return videoPath
	}

	return outputPath
}

// selectMusic picks a random track from the music dir.
func (p *implProducer) selectMusic() (string, error) {
	entries, err := os.ReadDir(p.cfg.Paths.Music)
	if err != nil {
		return "", fmt.Errorf("read music dir %s: %w", p.cfg.Paths.Music, err)
	}

	var tracks []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range musicExtensions {
			if ext == want {
				tracks = append(tracks, filepath.Join(p.cfg.Paths.Music, e.Name()))
				break
			}
		}
	}

	if len(tracks) == 0 {
		return "", fmt.Errorf("no music files in %s", p.cfg.Paths.Music)
	}

	return tracks[rand.Intn(len(tracks))], nil
}
