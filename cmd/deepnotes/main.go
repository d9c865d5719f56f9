package main

import (
	"fmt"
	"os"

	"deepnotes/cmd/deepnotes/cmd"
	"deepnotes/internal/config"
)

func main() {
	// Missing .env files are fine; keys can come from flags or the
	// process environment.
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	cmd.Execute()
}
