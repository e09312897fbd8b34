package main

import (
	"strings"
	"testing"
)

func TestToneFlagHelpMatchesScale(t *testing.T) {
	// The tone scale runs from humorous at 0 to informative at 1. The
	// flag help must describe the same direction.
	flag := createCmd.Flags().Lookup("tone")
	if flag == nil {
		t.Fatal("tone flag not registered")
	}
	usage := strings.ToLower(flag.Usage)
	if !strings.Contains(usage, "0 (humorous)") || !strings.Contains(usage, "1 (informative)") {
		t.Errorf("tone usage %q does not match the tone scale", flag.Usage)
	}
}
