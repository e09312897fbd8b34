package main

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "reelforge",
	Short: "Automated short-form video production pipeline",
	Long: `Reelforge turns a topic or a research PDF into a finished short video:
an LLM writes the script, a TTS engine narrates it, a speech recognizer
times every spoken word, and ffmpeg burns word-synchronized captions over
a template clip.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")
}
