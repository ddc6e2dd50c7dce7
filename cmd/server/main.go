// Command server exposes the minimal pair finder as a JSON REST API.
// Configuration is read from the file named by MINPAIRS_CONFIG
// (default ./config.yaml) and from the environment.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cours-de-latin/minpairs/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
