package jobstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "jobs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	created, err := store.Create(ctx, id, "cat facts")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Status != StatusQueued {
		t.Errorf("Status = %v, want queued", created.Status)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Topic != "cat facts" || got.Status != StatusQueued {
		t.Errorf("Get() = %+v", got)
	}
}

func TestGetNotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestProgressLifecycle(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	if _, err := store.Create(ctx, id, "topic"); err != nil {
		t.Fatal(err)
	}

	if err := store.SetProgress(ctx, id, "narration", 30); err != nil {
		t.Fatalf("SetProgress() error = %v", err)
	}
	job, _ := store.Get(ctx, id)
	if job.Status != StatusRunning || job.Stage != "narration" || job.Progress != 30 {
		t.Errorf("after SetProgress: %+v", job)
	}

	if err := store.Complete(ctx, id, "out/video.mp4"); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	job, _ = store.Get(ctx, id)
	if job.Status != StatusCompleted || job.Progress != 100 || job.VideoPath != "out/video.mp4" {
		t.Errorf("after Complete: %+v", job)
	}
	if !job.Terminal() {
		t.Error("completed job should be terminal")
	}
}

func TestFail(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	id := uuid.NewString()

	store.Create(ctx, id, "topic")
	if err := store.Fail(ctx, id, "compositor failed: boom"); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}

	job, _ := store.Get(ctx, id)
	if job.Status != StatusFailed || job.Error != "compositor failed: boom" {
		t.Errorf("after Fail: %+v", job)
	}
}

func TestUpdateMissingJob(t *testing.T) {
	store := openTestStore(t)
	err := store.SetProgress(context.Background(), "missing", "stage", 1)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestListOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, _ := store.Create(ctx, uuid.NewString(), "first")
	time.Sleep(5 * time.Millisecond)
	second, _ := store.Create(ctx, uuid.NewString(), "second")

	jobs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("job count = %d, want 2", len(jobs))
	}
	if jobs[0].ID != second.ID || jobs[1].ID != first.ID {
		t.Errorf("List() not newest-first: %v then %v", jobs[0].Topic, jobs[1].Topic)
	}
}

func TestDeleteOlderThan(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	oldID := uuid.NewString()
	store.Create(ctx, oldID, "old")
	store.Complete(ctx, oldID, "out/old.mp4")

	// Failed jobs carry no video but still count as deleted.
	failedID := uuid.NewString()
	store.Create(ctx, failedID, "broken")
	store.Fail(ctx, failedID, "boom")

	freshID := uuid.NewString()
	store.Create(ctx, freshID, "fresh")

	time.Sleep(5 * time.Millisecond)
	deleted, paths, err := store.DeleteOlderThan(ctx, time.Now())
	if err != nil {
		t.Fatalf("DeleteOlderThan() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if len(paths) != 1 || paths[0] != "out/old.mp4" {
		t.Errorf("paths = %v, want [out/old.mp4]", paths)
	}

	if _, err := store.Get(ctx, oldID); !errors.Is(err, ErrNotFound) {
		t.Error("old terminal job should be deleted")
	}
	if _, err := store.Get(ctx, failedID); !errors.Is(err, ErrNotFound) {
		t.Error("old failed job should be deleted")
	}
	if _, err := store.Get(ctx, freshID); err != nil {
		t.Error("queued job must survive cleanup")
	}
}

func TestTimestampFixedWidth(t *testing.T) {
	// Lexicographic order of stored timestamps must match chronological
	// order, including values with and without sub-second digits.
	whole := time.Date(2026, 8, 30, 12, 0, 1, 0, time.UTC)
	frac := time.Date(2026, 8, 30, 12, 0, 0, 500_000_000, time.UTC)

	a := whole.Format(timeLayout)
	b := frac.Format(timeLayout)
	if len(a) != len(b) {
		t.Fatalf("layout not fixed width: %q vs %q", a, b)
	}
	if !(b < a) {
		t.Errorf("%q should sort before %q", b, a)
	}

	parsed, err := time.Parse(timeLayout, b)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !parsed.Equal(frac) {
		t.Errorf("round trip = %v, want %v", parsed, frac)
	}
}
