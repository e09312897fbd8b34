package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tuanmanh1223/reel-forge/internal/creator"
	"github.com/tuanmanh1223/reel-forge/internal/server"
	"github.com/tuanmanh1223/reel-forge/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the job API server and inbox watcher",
	Long: `Serve starts the HTTP job API and watches the inbox directory. Dropped
.txt files (one topic per file) and .pdf files are picked up as new jobs.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Reelforge video pipeline")
	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Max concurrent jobs: %d", a.cfg.Performance.MaxConcurrent)

	srv := server.New(a.cfg, a.logger, a.store, a.creator)
	if err := srv.Start(ctx); err != nil {
		return err
	}
	defer srv.Stop()

	handler := creator.InboxHandler(a.store, a.creator, a.logger)
	w, err := watcher.New(a.cfg.Paths.Inbox, handler, a.logger, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	a.logger.Info(ctx, "API listening on %s", srv.Addr())
	a.logger.Info(ctx, "Inbox: %s", a.cfg.Paths.Inbox)
	a.logger.Info(ctx, "Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		a.logger.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		a.logger.Error(ctx, "Watcher error: %v", err)
	}

	a.logger.Info(ctx, "Shutting down gracefully...")
	cancel()

	return nil
}
