// Cheevo - Steam achievement tracker and next-pick recommender.
//
// A CLI tool that mirrors your Steam library's achievements into a local
// SQLite database and suggests which locked achievement to chase next.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cheevodev/cheevo/internal/cli"
	"github.com/cheevodev/cheevo/internal/config"
	"github.com/cheevodev/cheevo/internal/db"
	"github.com/cheevodev/cheevo/internal/log"
	"github.com/cheevodev/cheevo/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)

	if err := log.Init(paths.Logs); err == nil {
		defer func() { _ = log.Close() }()
	}

	// Open database for the persistent tracking ID
	database, err := db.New(db.DefaultConfig(paths.Database))
	if err != nil {
		log.Errorf("open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		_ = database.Close()
	}()

	telemetryClient := telemetry.New(database)
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
