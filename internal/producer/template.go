package producer

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv"}

// selectTemplate picks a random background video from the templates dir.
func (p *implProducer) selectTemplate() (string, error) {
	entries, err := os.ReadDir(p.cfg.Paths.Templates)
	if err != nil {
		return "", fmt.Errorf("read templates dir %s: %w", p.cfg.Paths.Templates, err)
	}

	var videos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range videoExtensions {
			if ext == want {
				videos = append(videos, filepath.Join(p.cfg.Paths.Templates, e.Name()))
				break
			}
		}
	}

	if len(videos) == 0 {
		return "", fmt.Errorf("no video templates found in %s", p.cfg.Paths.Templates)
	}

	return videos[rand.Intn(len(videos))], nil
}
