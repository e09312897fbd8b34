package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/creator"
	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
)

type fakeCreator struct {
	hub     *creator.Hub
	started chan creator.Options
}

func (f *fakeCreator) Create(ctx context.Context, jobID string, opts creator.Options) (string, error) {
	f.started <- opts
	return "/videos/out.mp4", nil
}

func (f *fakeCreator) Events() *creator.Hub {
	return f.hub
}

type fixture struct {
	store   *jobstore.Store
	creator *fakeCreator
	ts      *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := jobstore.Open(filepath.Join(t.TempDir(), "jobs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	fc := &fakeCreator{hub: creator.NewHub(), started: make(chan creator.Options, 8)}
	cfg := &config.Config{Server: config.ServerConfig{Addr: "127.0.0.1:0"}}
	srv := New(cfg, logger.New("error"), store, fc).(*implServer)

	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)

	return &fixture{store: store, creator: fc, ts: ts}
}

func (f *fixture) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(f.ts.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestHandleCreate(t *testing.T) {
	f := newFixture(t)

	resp := f.postJSON(t, "/api/create", map[string]any{"topic": "cat facts", "tone": 0.5})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}

	var out createResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.JobID == "" || out.Status != "queued" {
		t.Errorf("response = %+v", out)
	}

	job, err := f.store.Get(context.Background(), out.JobID)
	if err != nil {
		t.Fatalf("job not persisted: %v", err)
	}
	if job.Topic != "cat facts" {
		t.Errorf("topic = %q", job.Topic)
	}

	select {
	case opts := <-f.creator.started:
		if opts.Topic != "cat facts" || opts.Tone != 0.5 {
			t.Errorf("creator options = %+v", opts)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("job never started")
	}
}

func TestHandleCreateValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing topic", map[string]any{"tone": 0.5}},
		{"blank topic", map[string]any{"topic": "   "}},
		{"tone out of range", map[string]any{"topic": "x", "tone": 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := f.postJSON(t, "/api/create", tt.body)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestHandleCreateMethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.ts.URL + "/api/create")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHandleStatus(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	if _, err := f.store.Create(context.Background(), id, "topic"); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(f.ts.URL + "/api/status/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var job jobstore.Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		t.Fatal(err)
	}
	if job.ID != id || job.Status != jobstore.StatusQueued {
		t.Errorf("job = %+v", job)
	}
}

func TestHandleStatusNotFound(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.ts.URL + "/api/status/" + uuid.NewString())
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestHandleJobs(t *testing.T) {
	f := newFixture(t)
	for _, topic := range []string{"first", "second"} {
		if _, err := f.store.Create(context.Background(), uuid.NewString(), topic); err != nil {
			t.Fatal(err)
		}
	}

	resp, err := http.Get(f.ts.URL + "/api/jobs")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out struct {
		Jobs []jobstore.Job `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Jobs) != 2 {
		t.Errorf("jobs = %d, want 2", len(out.Jobs))
	}
}

func TestHandleDownload(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	if _, err := f.store.Create(context.Background(), id, "topic"); err != nil {
		t.Fatal(err)
	}

	videoPath := filepath.Join(t.TempDir(), "out.mp4")
	if err := os.WriteFile(videoPath, []byte("video bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := f.store.Complete(context.Background(), id, videoPath); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(f.ts.URL + "/api/download/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if buf.String() != "video bytes" {
		t.Errorf("body = %q", buf.String())
	}
}

func TestHandleDownloadNotFinished(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	if _, err := f.store.Create(context.Background(), id, "topic"); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(f.ts.URL + "/api/download/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want 409", resp.StatusCode)
	}
}

func TestHandleCleanup(t *testing.T) {
	f := newFixture(t)

	resp := f.postJSON(t, "/api/cleanup", map[string]any{"retention_hours": 1})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out["deleted_jobs"] != 0 {
		t.Errorf("deleted_jobs = %d, want 0 for fresh store", out["deleted_jobs"])
	}
}

func TestHandleCleanupRejectsBadRetention(t *testing.T) {
	f := newFixture(t)

	resp := f.postJSON(t, "/api/cleanup", map[string]any{"retention_hours": -1})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleLogsStream(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	if _, err := f.store.Create(context.Background(), id, "topic"); err != nil {
		t.Fatal(err)
	}
	if err := f.store.SetProgress(context.Background(), id, "generating script", 35); err != nil {
		t.Fatal(err)
	}

	wsURL := "ws" + strings.TrimPrefix(f.ts.URL, "http") + "/api/logs/" + id
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	defer resp.Body.Close()

	// First frame is the current snapshot.
	var snapshot creator.Event
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&snapshot); err != nil {
		t.Fatal(err)
	}
	if snapshot.Stage != "generating script" || snapshot.Progress != 35 {
		t.Errorf("snapshot = %+v", snapshot)
	}

	f.creator.hub.Publish(creator.Event{
		JobID:    id,
		Stage:    "completed",
		Progress: 100,
		Status:   string(jobstore.StatusCompleted),
	})

	var ev creator.Event
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatal(err)
	}
	if ev.Stage != "completed" || ev.Progress != 100 {
		t.Errorf("event = %+v", ev)
	}

	// Terminal event closes the stream.
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&creator.Event{}); err == nil {
		t.Error("stream should close after terminal event")
	}
}

func TestHandleLogsTerminalSnapshot(t *testing.T) {
	f := newFixture(t)
	id := uuid.NewString()
	if _, err := f.store.Create(context.Background(), id, "topic"); err != nil {
		t.Fatal(err)
	}
	// Job finishes before the client connects. The stream must still
	// deliver a terminal frame instead of waiting for a live event that
	// was published before the subscription existed.
	if err := f.store.Complete(context.Background(), id, "/videos/out.mp4"); err != nil {
		t.Fatal(err)
	}

	wsURL := "ws" + strings.TrimPrefix(f.ts.URL, "http") + "/api/logs/" + id
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	defer resp.Body.Close()

	var snapshot creator.Event
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&snapshot); err != nil {
		t.Fatal(err)
	}
	if snapshot.Status != string(jobstore.StatusCompleted) {
		t.Errorf("snapshot status = %q, want completed", snapshot.Status)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&creator.Event{}); err == nil {
		t.Error("stream should close after terminal snapshot")
	}
}

func TestHandleLogsUnknownJob(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.ts.URL + "/api/logs/" + uuid.NewString())
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
