package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tuanmanh1223/reel-forge/internal/creator"
	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
)

type createRequest struct {
	Topic   string  `json:"topic"`
	Tone    float64 `json:"tone"`
	PDFPath string  `json:"pdf_path,omitempty"`
}

type createResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

type cleanupRequest struct {
	RetentionHours int `json:"retention_hours"`
}

// handleCreate accepts a job request and runs it in the background.
func (s *implServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		s.writeError(w, http.StatusBadRequest, "topic is required")
		return
	}
	if req.Tone < 0 || req.Tone > 1 {
		s.writeError(w, http.StatusBadRequest, "tone must be between 0 and 1")
		return
	}

	id := uuid.NewString()
	if _, err := s.store.Create(r.Context(), id, req.Topic); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The job outlives the request; the creator's semaphore bounds how many
	// run at once.
	go func() {
		opts := creator.Options{Topic: req.Topic, Tone: req.Tone, PDFPath: req.PDFPath}
		if _, err := s.creator.Create(context.Background(), id, opts); err != nil {
			s.logger.Error(context.Background(), "Job %s failed: %v", id, err)
		}
	}()

	s.writeJSON(w, http.StatusAccepted, createResponse{JobID: id, Status: string(jobstore.StatusQueued)})
}

// handleStatus returns the stored state of one job.
func (s *implServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/status/")
	job, err := s.store.Get(r.Context(), id)
	if errors.Is(err, jobstore.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, job)
}

// handleJobs lists all jobs, newest first.
func (s *implServer) handleJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	jobs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleDownload streams the finished video of a completed job.
func (s *implServer) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/download/")
	job, err := s.store.Get(r.Context(), id)
	if errors.Is(err, jobstore.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if job.Status != jobstore.StatusCompleted || job.VideoPath == "" {
		s.writeError(w, http.StatusConflict, "job has no finished video")
		return
	}
	if _, err := os.Stat(job.VideoPath); err != nil {
		s.writeError(w, http.StatusNotFound, "video file no longer exists")
		return
	}

	w.Header().Set("Content-Type", "video/mp4")
	http.ServeFile(w, r, job.VideoPath)
}

// handleCleanup deletes jobs older than the retention window along with
// their video files.
func (s *implServer) handleCleanup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req := cleanupRequest{RetentionHours: 24}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if req.RetentionHours < 1 {
		s.writeError(w, http.StatusBadRequest, "retention_hours must be positive")
		return
	}

	cutoff := time.Now().Add(-time.Duration(req.RetentionHours) * time.Hour)
	deleted, videoPaths, err := s.store.DeleteOlderThan(r.Context(), cutoff)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	removed := 0
	for _, path := range videoPaths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil {
			s.logger.Warn(r.Context(), "Cleanup could not remove %s: %v", path, err)
			continue
		}
		removed++
	}

	s.writeJSON(w, http.StatusOK, map[string]int{
		"deleted_jobs":   int(deleted),
		"removed_videos": removed,
	})
}

func (s *implServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error(context.Background(), "Failed to encode response: %v", err)
	}
}

func (s *implServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
