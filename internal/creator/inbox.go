package creator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
)

// InboxHandler turns a dropped inbox file into a job. A .txt file holds the
// topic text; a .pdf file is summarized as a document video, with the file
// name as the topic.
func InboxHandler(store *jobstore.Store, c Creator, log logger.Logger) func(ctx context.Context, filePath string) error {
	return func(ctx context.Context, filePath string) error {
		opts, err := optionsFromFile(filePath)
		if err != nil {
			return err
		}

		id := uuid.NewString()
		if _, err := store.Create(ctx, id, opts.Topic); err != nil {
			return fmt.Errorf("enqueue inbox job: %w", err)
		}
		log.Info(ctx, "Inbox job %s queued from %s", id, filePath)

		if _, err := c.Create(ctx, id, opts); err != nil {
			return err
		}

		if err := os.Remove(filePath); err != nil {
			log.Warn(ctx, "Could not remove processed inbox file %s: %v", filePath, err)
		}
		return nil
	}
}

func optionsFromFile(filePath string) (Options, error) {
	stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	stem = strings.ReplaceAll(stem, "_", " ")

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return Options{Topic: stem, PDFPath: filePath}, nil
	case ".txt":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return Options{}, fmt.Errorf("read inbox file: %w", err)
		}
		topic := strings.TrimSpace(string(data))
		if topic == "" {
			topic = stem
		}
		// First line is the topic when the file has several.
		if i := strings.IndexByte(topic, '\n'); i >= 0 {
			topic = strings.TrimSpace(topic[:i])
		}
		return Options{Topic: topic}, nil
	default:
		return Options{}, fmt.Errorf("unsupported inbox file type: %s", filePath)
	}
}
