package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ali98nadhum/node-setup/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Interrupts reach npm through exec.CommandContext.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx, version, commit, date); err != nil {
		cancel()
		os.Exit(1)
	}
}
