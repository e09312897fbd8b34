package creator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
)

func TestOptionsFromFile(t *testing.T) {
	dir := t.TempDir()

	topicFile := filepath.Join(dir, "cat_facts.txt")
	if err := os.WriteFile(topicFile, []byte("why cats purr\nsecond line ignored\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		want     Options
		wantErr  bool
		skipFile bool
	}{
		{
			name: "txt with content",
			path: topicFile,
			want: Options{Topic: "why cats purr"},
		},
		{
			name: "pdf uses file name",
			path: filepath.Join(dir, "attention_is_all_you_need.pdf"),
			want: Options{Topic: "attention is all you need", PDFPath: filepath.Join(dir, "attention_is_all_you_need.pdf")},
		},
		{
			name:    "unsupported extension",
			path:    filepath.Join(dir, "clip.mp4"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := optionsFromFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("options = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOptionsFromEmptyTxtFallsBackToName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "space_habitats.txt")
	if err := os.WriteFile(path, []byte("   \n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := optionsFromFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Topic != "space habitats" {
		t.Errorf("topic = %q, want file name fallback", opts.Topic)
	}
}

func TestInboxHandler(t *testing.T) {
	f := newFixture(t)
	c := f.creator()

	dir := t.TempDir()
	path := filepath.Join(dir, "topic.txt")
	if err := os.WriteFile(path, []byte("deep sea creatures"), 0644); err != nil {
		t.Fatal(err)
	}

	handler := InboxHandler(f.store, c, logger.New("error"))
	if err := handler(context.Background(), path); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	jobs, err := f.store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(jobs))
	}
	if jobs[0].Topic != "deep sea creatures" {
		t.Errorf("topic = %q", jobs[0].Topic)
	}
	if jobs[0].Status != jobstore.StatusCompleted {
		t.Errorf("status = %s, want completed", jobs[0].Status)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("processed inbox file should be removed")
	}
}
