// Command vocabd runs the Spanish vocabulary API and manages its schema.
//
// Usage:
//
//	vocabd serve
//	vocabd migrate up|down|status
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vilyaua/AI-01/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRootCommand(cli.DefaultRunner()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "vocabd:", err)
		cancel()
		os.Exit(1)
	}
}
