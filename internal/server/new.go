package server

import (
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tuanmanh1223/reel-forge/internal/config"
	"github.com/tuanmanh1223/reel-forge/internal/creator"
	"github.com/tuanmanh1223/reel-forge/internal/jobstore"
	"github.com/tuanmanh1223/reel-forge/internal/logger"
)

type implServer struct {
	cfg      *config.Config
	logger   logger.Logger
	store    *jobstore.Store
	creator  creator.Creator
	upgrader websocket.Upgrader

	listener net.Listener
	server   *http.Server
}

// New creates the job API server.
func New(cfg *config.Config, log logger.Logger, store *jobstore.Store, c creator.Creator) Server {
	srv := &implServer{
		cfg:     cfg,
		logger:  log,
		store:   store,
		creator: c,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}

	srv.server = &http.Server{
		Handler:           srv.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv
}

func (s *implServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/create", s.handleCreate)
	mux.HandleFunc("/api/jobs", s.handleJobs)
	mux.HandleFunc("/api/status/", s.handleStatus)
	mux.HandleFunc("/api/download/", s.handleDownload)
	mux.HandleFunc("/api/cleanup", s.handleCleanup)
	mux.HandleFunc("/api/logs/", s.handleLogs)
	return mux
}
