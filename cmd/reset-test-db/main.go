package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/pirakansa/reset-test-db/internal/cli/commands"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := commands.Execute(ctx, Version)
	stop()
	os.Exit(code)
}
