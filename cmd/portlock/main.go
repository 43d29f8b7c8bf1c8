package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lbussy/portlock/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	versionInfo := config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	app := NewDefaultApp(versionInfo)

	if err := app.Config.ParseFlags(); err != nil {
		_, _ = fmt.Fprintf(app.Stderr, "Error: %v\n", err)
		app.exit(exitSystemError)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-c
		// Cancel the context to signal graceful shutdown; Run releases
		// the lock on its way out
		cancel()
	}()

	if err := app.Run(ctx); err != nil {
		_, _ = fmt.Fprintf(app.Stderr, "Error: %v\n", err)
		app.exit(exitCode(err))
	}
}
