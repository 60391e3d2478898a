// Command meetpoint solves best-meeting-point grids from the command line and
// benchmarks the solver strategies on generated grids.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "meetpoint:", err)
		os.Exit(1)
	}
}
