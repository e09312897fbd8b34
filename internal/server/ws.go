package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tuanmanh1223/reel-forge/internal/creator"
	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
)

const wsWriteTimeout = 10 * time.Second

// handleLogs upgrades to a websocket and streams progress events for one
// job until the job reaches a terminal state or the client disconnects.
func (s *implServer) handleLogs(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/logs/")

	// Subscribe before reading the snapshot so a terminal event landing
	// in between is either in the snapshot or in the channel, never lost.
	events, cancel := s.creator.Events().Subscribe(id)
	defer cancel()

	job, err := s.store.Get(r.Context(), id)
	if errors.Is(err, jobstore.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn(r.Context(), "Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Snapshot of where the job stands right now.
	snapshot := creator.Event{
		JobID:    job.ID,
		Stage:    job.Stage,
		Progress: job.Progress,
		Message:  job.Error,
		Status:   string(job.Status),
		Time:     job.UpdatedAt,
	}
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(snapshot); err != nil {
		return
	}
	if job.Terminal() {
		return
	}

	// Drain the client side so we notice a disconnect.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
			if ev.Status == string(jobstore.StatusCompleted) || ev.Status == string(jobstore.StatusFailed) {
				return
			}
		case <-clientGone:
			return
		}
	}
}
