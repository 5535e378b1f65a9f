package main

import (
	"fmt"
	"os"

	"gemini-transcribe/cmd/transcribe/cmd"
	"gemini-transcribe/internal/config"
)

func main() {
	// Load .env before anything reads the environment. A broken .env is
	// only a warning; variables may be set system-wide.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
