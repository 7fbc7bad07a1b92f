package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"tableflip.dev/folio/pkg/commands"
	"tableflip.dev/folio/pkg/commands/options"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.New().ExecuteContext(ctx); err != nil {
		stop()
		var reported *options.ReportedError
		if errors.As(err, &reported) {
			os.Exit(1)
		}
		log.Fatalf("error during command execution: %v", err)
	}
}
