package main

import (
	"context"
	"log"
	"os"

	"github.com/raoulx24/lcsave-backup/internal/config"
	"github.com/raoulx24/lcsave-backup/internal/logging"
	"github.com/raoulx24/lcsave-backup/internal/savedir"
	"github.com/raoulx24/lcsave-backup/internal/shell"
)

func main() {
	// Platform guard
	if err := config.CheckPlatform(); err != nil {
		log.Fatalf("refusing to start: %v", err)
	}

	// Logger
	logg := logging.New(os.Getenv("LCSAVE_LOG_LEVEL"), os.Stderr)

	// Resolve the save directory once and hand it to the accessor
	layout, err := config.Resolve(os.LookupEnv)
	if err != nil {
		log.Fatalf("failed to resolve save directory: %v", err)
	}

	dir := savedir.New(layout, logg, nil)

	// Menu loop, returns only when stdin is closed
	if err := shell.New(dir, os.Stdin, os.Stdout, logg).Run(context.Background()); err != nil {
		log.Fatalf("shell: %v", err)
	}
}
