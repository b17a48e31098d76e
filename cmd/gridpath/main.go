// Command gridpath generates a random maze on a grid and solves it with A*,
// printing the board as it goes.
//
// Usage:
//
//	gridpath --rows 20 --cols 40 --density normal --animate --fps 30
//
// Every flag can also be set through a GRIDPATH_* environment variable
// (GRIDPATH_LOG_LEVEL=debug) or a config file given with --config.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		stop()
		os.Exit(1)
	}
}
