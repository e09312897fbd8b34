package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
)

// Document is an ordered caption cue list ready for rendering and storage.
type Document struct {
	Cues []Cue
}

// NewDocument builds a caption document from display chunks.
func NewDocument(chunks []Chunk) Document {
	return Document{Cues: Cues(chunks)}
}

// Render returns the document as SRT text.
func (d Document) Render() string {
	return Render(d.Cues)
}

// Write stores the rendered document at path, creating parent directories
// as needed.
func (d Document) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create caption dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(d.Render()), 0644); err != nil {
		return fmt.Errorf("write caption file: %w", err)
	}
	return nil
}
