package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/tuanmanh1223/reel-forge/internal/creator"
)

var (
	createTone float64
	createPDF  string
)

var createCmd = &cobra.Command{
	Use:   "create <topic>",
	Short: "Create one video and wait for it to finish",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().Float64VarP(&createTone, "tone", "t", 0.5, "tone from 0 (humorous) to 1 (informative)")
	createCmd.Flags().StringVarP(&createPDF, "pdf", "p", "", "summarize a PDF document (path or URL)")
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(strings.Join(args, " "))
	if topic == "" {
		return fmt.Errorf("topic must not be empty")
	}
	if createTone < 0 || createTone > 1 {
		return fmt.Errorf("tone must be between 0 and 1")
	}

	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	id := uuid.NewString()
	if _, err := a.store.Create(ctx, id, topic); err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}

	opts := creator.Options{Topic: topic, Tone: createTone, PDFPath: createPDF}
	videoPath, err := a.creator.Create(ctx, id, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Video ready: %s\n", videoPath)
	return nil
}
